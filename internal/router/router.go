package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"cardlink-backend/internal/handler"
	"cardlink-backend/pkg/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Contact  *handler.ContactHandler
	Category *handler.CategoryHandler
	Service  *handler.ServiceHandler
	Social   *handler.SocialHandler
	Theme    *handler.ThemeHandler
	Inbox    *handler.InboxHandler
}

func SetupRoutes(
	r chi.Router,
	h Handlers,
	auth *middleware.Auth,
	rdb *redis.Client,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	r.Use(middleware.RateLimiter(rdb, 100, time.Minute, 10*time.Minute, "global"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		// ---------------- Auth (public) ----------------
		api.Post("/request-otp/", h.Auth.HandleRequestOTP)
		api.Post("/verify-otp/", h.Auth.HandleVerifyOTP)
		api.Post("/signup/", h.Auth.HandleSignup)
		api.Post("/finalize-signup/", h.Auth.HandleFinalizeSignup)

		// ---------------- Directory (public) ----------------
		api.Get("/category/", h.Category.HandleList)
		api.Post("/category/", h.Category.HandleCreate)
		api.Get("/category/category/{id}/", h.Category.HandleGet)
		api.Post("/social/platforms/create/", h.Social.HandleCreatePlatform)
		api.Get("/users/", h.Profile.HandleListUsers)

		// Profile detail records a view only for authenticated viewers,
		// so auth is optional here.
		api.Group(func(pr chi.Router) {
			pr.Use(auth.Optional)
			pr.Get("/profile/{id}/", h.Profile.HandleProfileDetail)
			pr.Get("/profile-public/{id}/", h.Profile.HandlePublicProfile)
		})

		// Per-user lists that render an empty state instead of a 401.
		api.Group(func(pr chi.Router) {
			pr.Use(auth.Optional)
			pr.Get("/services/", h.Service.HandleList)
			pr.Get("/social/links/", h.Social.HandleListLinks)
			pr.Get("/theme/", h.Theme.HandleGet)
		})

		// ---------------- Authenticated ----------------
		api.Group(func(pr chi.Router) {
			pr.Use(auth.Require)

			pr.Get("/profile/", h.Profile.HandleGetProfile)
			pr.Patch("/profile/", h.Profile.HandleUpdateProfile)
			pr.Put("/profile/", h.Profile.HandleUpdateProfile)

			pr.Post("/services/", h.Service.HandleCreate)
			pr.Delete("/services/{id}/", h.Service.HandleDelete)

			pr.Post("/social/links/", h.Social.HandleCreateLink)
			pr.Delete("/social/links/{id}/", h.Social.HandleDeleteLink)

			pr.Put("/theme/", h.Theme.HandleUpdate)

			pr.Get("/contact/saved/", h.Contact.HandleListSaved)
			pr.Post("/contact/create-update/", h.Contact.HandleToggleSaved)
			pr.Get("/contact/recently-viewed/", h.Contact.HandleRecentlyViewed)

			pr.Get("/chats/", h.Inbox.HandleListMessages)
			pr.Post("/chats/send/", h.Inbox.HandleSendMessage)
			pr.Patch("/chats/mark-read/{id}/", h.Inbox.HandleMarkMessageRead)

			pr.Get("/notifications/", h.Inbox.HandleListNotifications)
			pr.Post("/notifications/send/", h.Inbox.HandleSendNotification)
			pr.Patch("/notifications/mark-read/{id}/", h.Inbox.HandleMarkNotificationRead)
		})
	})

	return r
}
