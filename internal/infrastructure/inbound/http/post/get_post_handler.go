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

type PostGetter interface {
	GetPostByID(ctx context.Context, id string, format model.ContentFormat) (*model.PostWithAuthor, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type GetPostRequestInternal struct {
	ID     string `validate:"required,uuid"`
	Format string `validate:"omitempty,oneof=html raw"`
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	req := GetPostRequestInternal{
		ID:     chi.URLParam(r, "id"),
		Format: r.URL.Query().Get("format"),
	}
	if err := h.validate.Struct(req); err != nil {
		h.log.Debug("GetPost validation failed", slog.String("id", req.ID), slog.String("error", err.Error()))
		response.Error(w, http.StatusBadRequest, "invalid post id")
		return
	}

	format := model.ContentFormatRaw
	if req.Format == string(model.ContentFormatHTML) {
		format = model.ContentFormatHTML
	}

	post, err := h.postService.GetPostByID(r.Context(), req.ID, format)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			response.Error(w, http.StatusNotFound, "Post not found")
		default:
			h.log.Error("Failed to get post", slog.String("id", req.ID), slog.String("error", err.Error()))
			response.Error(w, http.StatusInternalServerError, "Failed to get post")
		}
		return
	}

	response.JSON(w, http.StatusOK, post)
}
