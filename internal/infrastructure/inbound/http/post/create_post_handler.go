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

	"github.com/go-playground/validator/v10"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequest struct {
	Title      string  `json:"title" validate:"required,max=255"`
	Content    string  `json:"content" validate:"required"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=1000"`
	CoverImage *string `json:"coverImage" validate:"omitempty,url"`
	Published  *bool   `json:"published"`
	AuthorID   string  `json:"authorId" validate:"required,uuid"`
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := response.Decode(w, r, &req); err != nil {
		h.log.Debug("Invalid CreatePost body", slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("CreatePost validation failed", slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid request")
		return
	}

	post, err := h.postService.CreatePost(r.Context(), &model.CreatePostDTO{
		Title:      req.Title,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Published:  req.Published,
		AuthorID:   req.AuthorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrAuthorNotFound):
			response.Error(w, http.StatusBadRequest, "author does not exist")
		case errors.Is(err, custom_errors.ErrInvalidInput):
			response.Error(w, http.StatusBadRequest, "invalid request")
		default:
			h.log.Error("Failed to create post", slog.String("author_id", req.AuthorID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}

	h.log.Debug("Post created", slog.String("id", post.ID))
	response.JSON(w, http.StatusCreated, post)
}
