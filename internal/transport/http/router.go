package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-notify-client/internal/config"
	"github.com/go-notify-client/internal/transport/http/handler"
	appmiddleware "github.com/go-notify-client/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds the preview backend router. It serves the same paths and
// wire format as the production notification backend. The returned limiter
// must be stopped when the server shuts down.
func NewRouter(cfg *config.Config, deps *Deps) (http.Handler, *appmiddleware.RateLimiter) {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	limiter := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, cfg.TrustProxy)
	r.Use(limiter.Limit)

	healthH := handler.NewHealthHandler()
	regH := handler.NewRegistrationHandler(deps.Backend)
	notifH := handler.NewNotificationHandler(deps.Backend)
	topicH := handler.NewTopicHandler(deps.Backend)
	settingsH := handler.NewSettingsHandler(deps.Backend)

	r.Get("/health-check/{action}", healthH.Ping)

	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.Auth(deps.JWTProvider))

		r.Get("/notify/topics", topicH.List)
		r.Post("/notify/{transport}/register", regH.Register)
		r.Post("/notify/{transport}/deregister", regH.Deregister)

		r.Post("/notifies/read", notifH.MarkAsRead)
		r.Post("/notifies/delete", notifH.Delete)

		r.Route("/users/{userId}", func(r chi.Router) {
			r.Use(appmiddleware.RequireSelf("userId"))

			r.Get("/notifies", notifH.List)
			r.Get("/settings/notify", settingsH.Get)
			r.Put("/settings/notify", settingsH.Put)
			r.Get("/statuses/notify", notifH.Unread)
		})
	})

	return r, limiter
}
