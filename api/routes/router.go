package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/streetify/streetify-backend/api/controllers"
	"github.com/streetify/streetify-backend/api/middleware"
	"github.com/streetify/streetify-backend/internal/orders"
	"github.com/streetify/streetify-backend/internal/social"
	"github.com/streetify/streetify-backend/internal/users"
	"github.com/streetify/streetify-backend/internal/vendors"
	"github.com/streetify/streetify-backend/pkg/config"
	"github.com/streetify/streetify-backend/pkg/logger"
)

// Archive is the optional database mirror surface the router exposes.
type Archive interface {
	controllers.OrderArchive
	controllers.VendorCache
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	redisPinger controllers.Pinger,
	sessions middleware.SessionChecker,
	usersSvc users.Service,
	vendorsSvc vendors.Service,
	ordersSvc orders.Service,
	socialSvc social.Service,
	archiveSvc Archive,
	promRegistry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database": dbPinger,
			"redis":    redisPinger,
		}))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(usersSvc, logg))
		r.Post("/register", controllers.AuthRegister(usersSvc, logg))
		r.Post("/refresh", controllers.AuthRefresh(usersSvc, logg))
		r.Post("/forgot-password", controllers.AuthForgotPassword(usersSvc, logg))
		r.Post("/otp/send", controllers.AuthSendOTP(usersSvc, logg))
		r.Post("/otp/verify", controllers.AuthVerifyOTP(usersSvc, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Post("/logout", controllers.AuthLogout(usersSvc, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/me", func(r chi.Router) {
			r.Get("/", controllers.Me(usersSvc, logg))
			r.Patch("/profile", controllers.UpdateProfile(usersSvc, logg))
			r.Put("/preferences", controllers.ReplacePreferences(usersSvc, logg))
			r.Post("/addresses", controllers.AddAddress(usersSvc, logg))
			r.Delete("/addresses/{addressId}", controllers.RemoveAddress(usersSvc, logg))
			r.Post("/following/{vendorId}", controllers.ToggleFollowVendor(usersSvc, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(ordersSvc, logg))
			r.Delete("/", controllers.CartClear(ordersSvc, logg))
			r.Post("/items", controllers.CartAddItem(ordersSvc, logg))
			r.Patch("/items/{menuItemId}", controllers.CartUpdateItem(ordersSvc, logg))
			r.Delete("/items/{menuItemId}", controllers.CartRemoveItem(ordersSvc, logg))
			r.Post("/checkout", controllers.CartCheckout(ordersSvc, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/current", controllers.OrderCurrent(ordersSvc, logg))
			r.Get("/", controllers.OrderHistory(ordersSvc, logg))
			r.Get("/archive", controllers.OrderArchiveList(archiveSvc, logg))
			r.Post("/{orderId}/status", controllers.OrderAdvanceStatus(ordersSvc, logg))
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Get("/", controllers.VendorCatalog(vendorsSvc, logg))
			r.Get("/search", controllers.VendorSearch(vendorsSvc, logg))
			r.Get("/nearby", controllers.VendorNearby(vendorsSvc, logg))
			r.Post("/nearby/refresh", controllers.VendorRefreshNearby(vendorsSvc, logg))
			r.Get("/cached", controllers.VendorCachedCatalog(archiveSvc, logg))
			r.Get("/selected", controllers.VendorSelected(vendorsSvc, logg))
			r.Delete("/selected", controllers.VendorClearSelection(vendorsSvc, logg))
			r.Post("/{vendorId}/select", controllers.VendorSelect(vendorsSvc, logg))
			r.Get("/filters", controllers.VendorFilters(vendorsSvc, logg))
			r.Patch("/filters", controllers.VendorUpdateFilters(vendorsSvc, logg))
			r.Put("/{vendorId}/menu", controllers.VendorReplaceMenu(vendorsSvc, logg))
			r.Post("/{vendorId}/rating", controllers.VendorSetRating(vendorsSvc, logg))
			r.Post("/{vendorId}/menu/{menuItemId}/availability", controllers.VendorToggleItemAvailability(vendorsSvc, logg))
		})

		r.Route("/social", func(r chi.Router) {
			r.Get("/feed", controllers.SocialFeed(socialSvc, logg))
			r.Post("/feed/refresh", controllers.SocialRefreshFeed(socialSvc, logg))
			r.Get("/stories", controllers.SocialStories(socialSvc, logg))
			r.Get("/reels", controllers.SocialReels(socialSvc, logg))
			r.Get("/users/{userId}/posts", controllers.SocialUserPosts(socialSvc, logg))
			r.Post("/content", controllers.SocialPublish(socialSvc, logg))
			r.Post("/content/{contentId}/like", controllers.SocialToggleLike(socialSvc, logg))
			r.Post("/content/{contentId}/comments", controllers.SocialAddComment(socialSvc, logg))
		})
	})

	return r
}
