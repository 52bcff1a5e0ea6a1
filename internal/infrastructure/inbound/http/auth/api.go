package auth_http

import (
	"net/http"

	auth_service "blog-platform/internal/domain/ports/input/auth"
	ports "blog-platform/internal/domain/ports/output"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AuthHTTPService struct {
	loginHandler  *LoginHandler
	logoutHandler *LogoutHandler
	meHandler     *MeHandler
}

func NewAuthHTTPService(
	authService auth_service.Service,
	sessions ports.SessionStore,
	cookie CookieSettings,
	validate *validator.Validate,
	log ports.Logger,
) *AuthHTTPService {
	return &AuthHTTPService{
		loginHandler:  NewLoginHandler(authService, sessions, cookie, validate, log),
		logoutHandler: NewLogoutHandler(sessions, cookie, log),
		meHandler:     NewMeHandler(authService, log),
	}
}

func (s *AuthHTTPService) Routes(r chi.Router, requireSession func(http.Handler) http.Handler) {
	r.Post("/login", s.loginHandler.Login)
	r.Post("/logout", s.logoutHandler.Logout)
	r.With(requireSession).Get("/me", s.meHandler.Me)
}
