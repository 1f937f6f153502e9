package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/streetify/streetify-backend/api/middleware"
	"github.com/streetify/streetify-backend/api/responses"
	"github.com/streetify/streetify-backend/api/validators"
	"github.com/streetify/streetify-backend/internal/orders"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/types"
)

type addCartItemRequest struct {
	VendorID       string            `json:"vendor_id" validate:"required"`
	MenuItemID     string            `json:"menu_item_id" validate:"required"`
	Quantity       int               `json:"quantity" validate:"required,min=1"`
	Price          decimal.Decimal   `json:"price" validate:"required"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	DeliveryAddress types.Address `json:"delivery_address" validate:"required"`
	PaymentMethod   string        `json:"payment_method" validate:"required"`
}

func CartFetch(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Cart(r.Context()))
	}
}

func CartAddItem(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.AddItem(r.Context(), orders.AddItemInput{
			VendorID: payload.VendorID,
			Item: types.OrderItem{
				MenuItemID:     payload.MenuItemID,
				Quantity:       payload.Quantity,
				Price:          payload.Price,
				Customizations: payload.Customizations,
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

func CartUpdateItem(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.UpdateQuantity(r.Context(), chi.URLParam(r, "menuItemId"), payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

func CartRemoveItem(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cart, err := svc.RemoveItem(r.Context(), chi.URLParam(r, "menuItemId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cart)
	}
}

func CartClear(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.ClearCart(r.Context()))
	}
}

func CartCheckout(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), orders.CheckoutInput{
			UserID:          userID,
			DeliveryAddress: payload.DeliveryAddress,
			PaymentMethod:   payload.PaymentMethod,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
