package post_http

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

type PostUpdater interface {
	UpdatePost(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type UpdatePostRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=1000"`
	CoverImage *string `json:"coverImage" validate:"omitempty,url"`
	Published  *bool   `json:"published"`
}

type UpdatePostRequestInternal struct {
	ID string `validate:"required,uuid"`
}

func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := UpdatePostRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(id); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req UpdatePostRequest
	if err := response.Decode(w, r, &req); err != nil {
		h.log.Debug("Invalid UpdatePost body", slog.String("id", id.ID), slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("UpdatePost validation failed", slog.String("id", id.ID), slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id.ID, &model.UpdatePostDTO{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			response.Error(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, custom_errors.ErrNoUpdateFields):
			response.Error(w, http.StatusBadRequest, "no fields to update")
		case errors.Is(err, custom_errors.ErrInvalidInput):
			response.Error(w, http.StatusBadRequest, "invalid request")
		default:
			h.log.Error("Failed to update post", slog.String("id", id.ID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}

	response.JSON(w, http.StatusOK, post)
}
