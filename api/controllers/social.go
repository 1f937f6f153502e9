package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/streetify/streetify-backend/api/middleware"
	"github.com/streetify/streetify-backend/api/responses"
	"github.com/streetify/streetify-backend/api/validators"
	"github.com/streetify/streetify-backend/internal/social"
	"github.com/streetify/streetify-backend/pkg/enums"
	pkgerrors "github.com/streetify/streetify-backend/pkg/errors"
	"github.com/streetify/streetify-backend/pkg/logger"
	"github.com/streetify/streetify-backend/pkg/pagination"
	"github.com/streetify/streetify-backend/pkg/types"
)

type publishContentRequest struct {
	Type             string                 `json:"type" validate:"required"`
	Media            []types.Media          `json:"media" validate:"required,min=1"`
	Caption          *string                `json:"caption,omitempty"`
	Location         *types.ContentLocation `json:"location,omitempty"`
	Tags             []string               `json:"tags,omitempty"`
	Mentions         []string               `json:"mentions,omitempty"`
	AssociatedVendor *string                `json:"associated_vendor,omitempty"`
	AssociatedItems  []string               `json:"associated_items,omitempty"`
}

type toggleLikeRequest struct {
	Increment bool `json:"increment"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

func SocialFeed(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Feed(r.Context(), pagination.FromRequest(r)))
	}
}

func SocialRefreshFeed(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := svc.RefreshFeed(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, feed)
	}
}

func SocialStories(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Stories(r.Context()))
	}
}

func SocialReels(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Reels(r.Context()))
	}
}

func SocialUserPosts(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.UserPosts(r.Context(), chi.URLParam(r, "userId")))
	}
}

func SocialPublish(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		creatorID := middleware.UserIDFromContext(r.Context())
		if creatorID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload publishContentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		contentType, err := enums.ParseContentType(payload.Type)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid content type"))
			return
		}

		content, err := svc.Publish(r.Context(), social.PublishInput{
			CreatorID:        creatorID,
			Type:             contentType,
			Media:            payload.Media,
			Caption:          payload.Caption,
			Location:         payload.Location,
			Tags:             payload.Tags,
			Mentions:         payload.Mentions,
			AssociatedVendor: payload.AssociatedVendor,
			AssociatedItems:  payload.AssociatedItems,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, content)
	}
}

func SocialToggleLike(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload toggleLikeRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.ToggleLike(r.Context(), chi.URLParam(r, "contentId"), payload.Increment)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, content)
	}
}

func SocialAddComment(svc social.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload addCommentRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.AddComment(r.Context(), social.AddCommentInput{
			ContentID: chi.URLParam(r, "contentId"),
			UserID:    userID,
			Content:   payload.Content,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, content)
	}
}
