package http_server

import (
	"context"
	"log/slog"
	"net/http"

	auth_service "blog-platform/internal/domain/ports/input/auth"
	post_service "blog-platform/internal/domain/ports/input/post"
	user_service "blog-platform/internal/domain/ports/input/user"
	ports "blog-platform/internal/domain/ports/output"
	auth_http "blog-platform/internal/infrastructure/inbound/http/auth"
	"blog-platform/internal/infrastructure/inbound/http/middleware"
	post_http "blog-platform/internal/infrastructure/inbound/http/post"
	"blog-platform/internal/infrastructure/inbound/http/response"
	user_http "blog-platform/internal/infrastructure/inbound/http/user"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
)

type Dependencies struct {
	PostService    post_service.Service
	UserService    user_service.Service
	AuthService    auth_service.Service
	Sessions       ports.SessionStore
	Cookie         auth_http.CookieSettings
	AllowedOrigins []string
	// ProtectWrites puts POST/PATCH/DELETE on posts and users behind a session.
	ProtectWrites bool
	// HealthCheck is optional; a nil check always reports healthy.
	HealthCheck func(ctx context.Context) error
	Metrics     ports.MetricsProvider
	Log         ports.Logger
}

func NewRouter(deps Dependencies) http.Handler {
	validate := validator.New()
	requireSession := middleware.RequireSession(deps.Sessions, deps.Cookie.Name, deps.Log)

	var writeGuard func(http.Handler) http.Handler
	if deps.ProtectWrites {
		writeGuard = requireSession
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler(deps))

	r.Route("/auth", func(r chi.Router) {
		auth_http.NewAuthHTTPService(deps.AuthService, deps.Sessions, deps.Cookie, validate, deps.Log).
			Routes(r, requireSession)
	})
	r.Route("/posts", func(r chi.Router) {
		post_http.NewPostHTTPService(deps.PostService, validate, deps.Log).Routes(r, writeGuard)
	})
	r.Route("/users", func(r chi.Router) {
		user_http.NewUserHTTPService(deps.UserService, validate, deps.Log).Routes(r, writeGuard)
	})

	return r
}

func healthHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(r.Context()); err != nil {
				deps.Log.Warn("Health check failed", slog.String("error", err.Error()))
				deps.Metrics.SetServiceHealth(false)
				response.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		deps.Metrics.SetServiceHealth(true)
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
