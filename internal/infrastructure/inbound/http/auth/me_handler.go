package auth_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/middleware"
	"blog-platform/internal/infrastructure/inbound/http/response"
)

type CurrentUserGetter interface {
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}

type MeHandler struct {
	authService CurrentUserGetter
	log         ports.Logger
}

func NewMeHandler(authService CurrentUserGetter, log ports.Logger) *MeHandler {
	return &MeHandler{authService: authService, log: log}
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	user, err := h.authService.CurrentUser(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusUnauthorized, "not authenticated")
		default:
			h.log.Error("Failed to get current user", slog.String("user_id", session.UserID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to get user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}
