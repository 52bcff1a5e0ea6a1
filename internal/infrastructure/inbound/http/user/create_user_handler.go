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

	"github.com/go-playground/validator/v10"
)

type UserCreator interface {
	CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
}

type CreateUserHandler struct {
	userService UserCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreateUserHandler(userService UserCreator, validate *validator.Validate, log ports.Logger) *CreateUserHandler {
	return &CreateUserHandler{userService: userService, validate: validate, log: log}
}

type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required,max=255"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Image    *string `json:"image" validate:"omitempty,url"`
}

func (h *CreateUserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := response.Decode(w, r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("CreateUser validation failed", slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), &model.CreateUserDTO{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Image:    req.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrEmailAlreadyExists):
			response.Error(w, http.StatusConflict, "email already exists")
		case errors.Is(err, custom_errors.ErrInvalidInput):
			response.Error(w, http.StatusBadRequest, "invalid request")
		default:
			h.log.Error("Failed to create user", slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	response.JSON(w, http.StatusCreated, user)
}
