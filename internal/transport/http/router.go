package http

import (
	"log/slog"
	"net/http"

	"github.com/go-api-selfservice/internal/application/identity"
	"github.com/go-api-selfservice/internal/application/user"
	"github.com/go-api-selfservice/internal/config"
	"github.com/go-api-selfservice/internal/metrics"
	"github.com/go-api-selfservice/internal/transport/http/handler"
	appmiddleware "github.com/go-api-selfservice/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds and returns the application router. Every route is served
// at the root and mirrored under /v1.
func NewRouter(cfg *config.Config, deps *Deps, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Instrument)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	svcDeps := user.ServiceDeps{
		UserRepo: deps.UserRepo,
		Hasher:   deps.Hasher,
		Notifier: deps.Notifier,
		Logger:   logger,
	}
	if deps.Metrics != nil {
		svcDeps.Recorder = deps.Metrics
	}
	userSvc := user.NewService(svcDeps)
	authMw := appmiddleware.Auth(identity.NewResolver(deps.Verifier, deps.SessionRepo, logger))

	healthH := handler.NewHealthHandler(deps.Ready)
	userH := handler.NewUserHandler(userSvc)

	routes := func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Check)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/users/info", userH.GetProfile)
			r.Put("/users/change_pass", userH.ChangePassword)
			r.Put("/users/change_phone_number/{new_number}", userH.ChangePhoneNumber)
		})
	}
	routes(r)
	r.Route("/v1", routes)

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))
	}
	return r
}
