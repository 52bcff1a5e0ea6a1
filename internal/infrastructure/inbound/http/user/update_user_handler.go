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

type UserUpdater interface {
	UpdateUser(ctx context.Context, id string, update *model.UpdateUserDTO) (*model.User, error)
}

type UpdateUserHandler struct {
	userService UserUpdater
	validate    *validator.Validate
	log         ports.Logger
}

func NewUpdateUserHandler(userService UserUpdater, validate *validator.Validate, log ports.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{userService: userService, validate: validate, log: log}
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

type UpdateUserRequestInternal struct {
	ID string `validate:"required,uuid"`
}

func (h *UpdateUserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := UpdateUserRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(id); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("UpdateUser validation failed", slog.String("id", id.ID), slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id.ID, &model.UpdateUserDTO{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Image:    req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, custom_errors.ErrEmailAlreadyExists):
			response.Error(w, http.StatusConflict, "email already exists")
		case errors.Is(err, custom_errors.ErrNoUpdateFields):
			response.Error(w, http.StatusBadRequest, "no fields to update")
		case errors.Is(err, custom_errors.ErrInvalidInput):
			response.Error(w, http.StatusBadRequest, "invalid request")
		default:
			h.log.Error("Failed to update user", slog.String("id", id.ID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}

	response.JSON(w, http.StatusOK, user)
}
