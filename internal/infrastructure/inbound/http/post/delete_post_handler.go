package post_http

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

type PostDeleter interface {
	DeletePost(ctx context.Context, id string) error
}

type DeletePostHandler struct {
	postService PostDeleter
	validate    *validator.Validate
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, validate *validator.Validate, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type DeletePostRequestInternal struct {
	ID string `validate:"required,uuid"`
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	req := DeletePostRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("DeletePost validation failed", slog.String("id", req.ID), slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.DeletePost(r.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			response.Error(w, http.StatusNotFound, "Post not found")
		default:
			h.log.Error("Failed to delete post", slog.String("id", req.ID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to delete post")
		}
		return
	}

	h.log.Debug("Post deleted", slog.String("id", req.ID))
	response.NoContent(w)
}
