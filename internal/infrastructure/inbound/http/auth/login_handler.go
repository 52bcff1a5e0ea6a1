package auth_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"

	"github.com/go-playground/validator/v10"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type LoginHandler struct {
	authService Authenticator
	sessions    ports.SessionStore
	cookie      CookieSettings
	validate    *validator.Validate
	log         ports.Logger
}

func NewLoginHandler(
	authService Authenticator,
	sessions ports.SessionStore,
	cookie CookieSettings,
	validate *validator.Validate,
	log ports.Logger,
) *LoginHandler {
	return &LoginHandler{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
		validate:    validate,
		log:         log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success bool        `json:"success"`
	User    *model.User `json:"user,omitempty"`
	Message string      `json:"message,omitempty"`
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.JSON(w, http.StatusBadRequest, LoginResponse{Message: "Invalid request"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.JSON(w, http.StatusUnauthorized, LoginResponse{Message: "Invalid email or password"})
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrInvalidCredentials):
			response.JSON(w, http.StatusUnauthorized, LoginResponse{Message: "Invalid email or password"})
		default:
			h.log.Error("Login error", slog.String("error", err.Error()))
			response.JSON(w, http.StatusInternalServerError, LoginResponse{Message: "Login failed"})
		}
		return
	}

	session, err := h.sessions.Create(r.Context(), user)
	if err != nil {
		h.log.Error("Failed to open session", slog.String("user_id", user.ID), slog.String("error", err.Error()))
		response.JSON(w, http.StatusInternalServerError, LoginResponse{Message: "Login failed"})
		return
	}

	http.SetCookie(w, h.cookie.sessionCookie(session.ID))
	response.JSON(w, http.StatusOK, LoginResponse{Success: true, User: user.Sanitized()})
}
