package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/streetify/streetify-backend/api/middleware"
	"github.com/streetify/streetify-backend/api/responses"
	"github.com/streetify/streetify-backend/api/validators"
	"github.com/streetify/streetify-backend/internal/orders"
	"github.com/streetify/streetify-backend/pkg/enums"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/pagination"
	"github.com/streetify/streetify-backend/pkg/types"
)

// OrderArchive reads the database mirror of completed orders.
type OrderArchive interface {
	RecentOrders(ctx context.Context, userID string, limit int) ([]types.Order, error)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func OrderCurrent(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.CurrentOrder(r.Context()))
	}
}

func OrderHistory(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.History(r.Context(), pagination.FromRequest(r)))
	}
}

func OrderAdvanceStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status"))
			return
		}

		order, err := svc.AdvanceStatus(r.Context(), chi.URLParam(r, "orderId"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// OrderArchiveList serves the persisted order history, which survives
// restarts unlike the in-memory slice.
func OrderArchiveList(archive OrderArchive, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if archive == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order archive unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 50, 1, 200)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := archive.RecentOrders(r.Context(), userID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading archived orders"))
			return
		}
		responses.WriteSuccess(w, list)
	}
}
