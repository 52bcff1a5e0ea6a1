package post_http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/inbound/http/response"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.PostWithAuthor, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	var filters model.PostFilters
	if raw := r.URL.Query().Get("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "invalid published filter")
			return
		}
		filters.Published = &published
	}

	posts, err := h.postService.ListPosts(r.Context(), filters)
	if err != nil {
		h.log.Error("Failed to get posts", slog.String("error", err.Error()))
		response.Error(w, http.StatusInternalServerError, "Failed to get posts")
		return
	}

	response.JSON(w, http.StatusOK, posts)
}
