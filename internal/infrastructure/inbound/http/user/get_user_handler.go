package user_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*model.UserDetailed, error)
}

type GetUserHandler struct {
	userService UserGetter
	validate    *validator.Validate
	log         ports.Logger
}

func NewGetUserHandler(userService UserGetter, validate *validator.Validate, log ports.Logger) *GetUserHandler {
	return &GetUserHandler{userService: userService, validate: validate, log: log}
}

type GetUserRequestInternal struct {
	ID string `validate:"required,uuid"`
}

func (h *GetUserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	req := GetUserRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		default:
			h.log.Error("Failed to get user", slog.String("id", req.ID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to get user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}
