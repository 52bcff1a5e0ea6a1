package user_http

import (
	"context"
	"log/slog"
	"net/http"

	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]*model.UserWithCount, error)
}

type ListUsersHandler struct {
	userService UserLister
	log         ports.Logger
}

func NewListUsersHandler(userService UserLister, log ports.Logger) *ListUsersHandler {
	return &ListUsersHandler{userService: userService, log: log}
}

func (h *ListUsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.log.Error("Failed to get users", slog.String("error", err.Error()))
		response.Error(w, http.StatusInternalServerError, "Failed to get users")
		return
	}
	response.JSON(w, http.StatusOK, users)
}
