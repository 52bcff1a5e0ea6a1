package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	post_repository "blog-platform/internal/domain/ports/output/post"
)

type Service struct {
	postRepo post_repository.Repository
	renderer ports.ContentRenderer
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewPostService(
	postRepo post_repository.Repository,
	renderer ports.ContentRenderer,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		postRepo: postRepo,
		renderer: renderer,
		log:      log,
		metrics:  metrics,
	}
}

func (s *Service) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	if post == nil || strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Content) == "" || post.AuthorID == "" {
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrInvalidInput
	}

	published := false
	if post.Published != nil {
		published = *post.Published
	}

	newPost := &model.Post{
		Title:      post.Title,
		Content:    post.Content,
		Excerpt:    post.Excerpt,
		CoverImage: post.CoverImage,
		Published:  published,
		AuthorID:   post.AuthorID,
	}

	created, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		switch {
		case errors.Is(err, custom_errors.ErrAuthorNotFound):
			s.log.Debug("Post author not found", slog.String("author_id", post.AuthorID))
			return nil, custom_errors.ErrAuthorNotFound
		default:
			s.log.Error("Failed to create post", slog.String("author_id", post.AuthorID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("create", true)
	s.log.Info("Post created", slog.String("id", created.ID), slog.String("author_id", created.AuthorID))
	return created, nil
}

func (s *Service) GetPostByID(ctx context.Context, id string, format model.ContentFormat) (*model.PostWithAuthor, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("get", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	if format == model.ContentFormatHTML {
		rendered, err := s.renderer.RenderHTML(post.Content)
		if err != nil {
			s.metrics.IncrementPostOperations("get", false)
			s.log.Error("Failed to render post content", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrContentRender
		}
		post.Content = rendered
	}

	s.metrics.IncrementPostOperations("get", true)
	return post, nil
}

func (s *Service) ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.PostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.metrics.IncrementPostOperations("list", false)
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("list", true)
	return posts, nil
}

func (s *Service) UpdatePost(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	if update.IsEmpty() {
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrNoUpdateFields
	}
	if (update.Title != nil && strings.TrimSpace(*update.Title) == "") ||
		(update.Content != nil && strings.TrimSpace(*update.Content) == "") {
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrInvalidInput
	}

	updated, err := s.postRepo.Update(ctx, id, update)
	if err != nil {
		s.metrics.IncrementPostOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for update", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		case errors.Is(err, custom_errors.ErrNoUpdateFields):
			return nil, custom_errors.ErrNoUpdateFields
		default:
			s.log.Error("Failed to update post", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("update", true)
	s.log.Info("Post updated", slog.String("id", id))
	return updated, nil
}

func (s *Service) DeletePost(ctx context.Context, id string) error {
	err := s.postRepo.Delete(ctx, id)
	if err != nil {
		s.metrics.IncrementPostOperations("delete", false)
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found for delete", slog.String("id", id))
			return custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to delete post", slog.String("id", id), slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementPostOperations("delete", true)
	s.log.Info("Post deleted", slog.String("id", id))
	return nil
}
