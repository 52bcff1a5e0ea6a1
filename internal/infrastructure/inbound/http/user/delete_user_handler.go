package user_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform/internal/custom_errors"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserDeleter interface {
	DeleteUser(ctx context.Context, id string) error
}

type DeleteUserHandler struct {
	userService UserDeleter
	validate    *validator.Validate
	log         ports.Logger
}

func NewDeleteUserHandler(userService UserDeleter, validate *validator.Validate, log ports.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{userService: userService, validate: validate, log: log}
}

type DeleteUserRequestInternal struct {
	ID string `validate:"required,uuid"`
}

// DeleteUser removes the user together with every post they authored.
func (h *DeleteUserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	req := DeleteUserRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to delete user", slog.String("id", req.ID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}

	response.NoContent(w)
}
