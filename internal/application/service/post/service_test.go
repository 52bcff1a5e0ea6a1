package post_service

import (
	"context"
	"errors"
	"testing"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	"blog-platform/internal/infrastructure/logger"
	"blog-platform/internal/infrastructure/outbound/metrics/prometheus"
	post_mocks "blog-platform/mocks/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPostService_CreatePost(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	tests := []struct {
		name          string
		input         *model.CreatePostDTO
		mocks         func(repo *post_mocks.Repository)
		wantPublished bool
		wantErr       error
	}{
		{
			name:  "published defaults to false",
			input: &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: "author-1"},
			mocks: func(repo *post_mocks.Repository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool {
					return !p.Published && p.AuthorID == "author-1"
				})).Return(func(_ context.Context, p *model.Post) *model.Post {
					created := *p
					created.ID = "post-1"
					return &created
				}, nil)
			},
			wantPublished: false,
		},
		{
			name:  "explicit published",
			input: &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: "author-1", Published: boolPtr(true)},
			mocks: func(repo *post_mocks.Repository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Post) bool { return p.Published })).
					Return(&model.Post{ID: "post-1", AuthorID: "author-1", Published: true}, nil)
			},
			wantPublished: true,
		},
		{
			name:    "missing title",
			input:   &model.CreatePostDTO{Content: "World", AuthorID: "author-1"},
			mocks:   func(repo *post_mocks.Repository) {},
			wantErr: custom_errors.ErrInvalidInput,
		},
		{
			name:    "missing author",
			input:   &model.CreatePostDTO{Title: "Hello", Content: "World"},
			mocks:   func(repo *post_mocks.Repository) {},
			wantErr: custom_errors.ErrInvalidInput,
		},
		{
			name:  "author does not exist",
			input: &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: "ghost"},
			mocks: func(repo *post_mocks.Repository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrAuthorNotFound)
			},
			wantErr: custom_errors.ErrAuthorNotFound,
		},
		{
			name:  "database error",
			input: &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: "author-1"},
			mocks: func(repo *post_mocks.Repository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := post_mocks.NewRepository(t)
			renderer := post_mocks.NewContentRenderer(t)
			tt.mocks(repo)

			service := NewPostService(repo, renderer, log, metrics)
			got, err := service.CreatePost(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input.AuthorID, got.AuthorID)
			assert.Equal(t, tt.wantPublished, got.Published)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()
	stored := func() *model.PostWithAuthor {
		return &model.PostWithAuthor{
			Post:   model.Post{ID: "post-1", Title: "Hello", Content: "# Hi", AuthorID: "author-1"},
			Author: &model.AuthorSummary{ID: "author-1", Name: "Alice"},
		}
	}

	tests := []struct {
		name        string
		format      model.ContentFormat
		mocks       func(repo *post_mocks.Repository, renderer *post_mocks.ContentRenderer)
		wantContent string
		wantErr     error
	}{
		{
			name:   "raw content",
			format: model.ContentFormatRaw,
			mocks: func(repo *post_mocks.Repository, renderer *post_mocks.ContentRenderer) {
				repo.On("GetByID", mock.Anything, "post-1").Return(stored(), nil)
			},
			wantContent: "# Hi",
		},
		{
			name:   "html content",
			format: model.ContentFormatHTML,
			mocks: func(repo *post_mocks.Repository, renderer *post_mocks.ContentRenderer) {
				repo.On("GetByID", mock.Anything, "post-1").Return(stored(), nil)
				renderer.On("RenderHTML", "# Hi").Return("<h1>Hi</h1>", nil)
			},
			wantContent: "<h1>Hi</h1>",
		},
		{
			name:   "render failure",
			format: model.ContentFormatHTML,
			mocks: func(repo *post_mocks.Repository, renderer *post_mocks.ContentRenderer) {
				repo.On("GetByID", mock.Anything, "post-1").Return(stored(), nil)
				renderer.On("RenderHTML", "# Hi").Return("", errors.New("bad markdown"))
			},
			wantErr: custom_errors.ErrContentRender,
		},
		{
			name:   "not found",
			format: model.ContentFormatRaw,
			mocks: func(repo *post_mocks.Repository, renderer *post_mocks.ContentRenderer) {
				repo.On("GetByID", mock.Anything, "post-1").Return(nil, custom_errors.ErrPostNotFound)
			},
			wantErr: custom_errors.ErrPostNotFound,
		},
		{
			name:   "database error",
			format: model.ContentFormatRaw,
			mocks: func(repo *post_mocks.Repository, renderer *post_mocks.ContentRenderer) {
				repo.On("GetByID", mock.Anything, "post-1").Return(nil, custom_errors.ErrDatabaseScan)
			},
			wantErr: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := post_mocks.NewRepository(t)
			renderer := post_mocks.NewContentRenderer(t)
			tt.mocks(repo, renderer)

			service := NewPostService(repo, renderer, log, metrics)
			got, err := service.GetPostByID(context.Background(), "post-1", tt.format)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, got.Content)
			assert.Equal(t, "Alice", got.Author.Name)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	t.Run("passes filters through", func(t *testing.T) {
		repo := post_mocks.NewRepository(t)
		filters := model.PostFilters{Published: boolPtr(true)}
		repo.On("List", mock.Anything, filters).Return([]*model.PostWithAuthor{{Post: model.Post{ID: "p1", Published: true}}}, nil)

		service := NewPostService(repo, post_mocks.NewContentRenderer(t), log, metrics)
		posts, err := service.ListPosts(context.Background(), filters)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("database error", func(t *testing.T) {
		repo := post_mocks.NewRepository(t)
		repo.On("List", mock.Anything, model.PostFilters{}).Return(nil, custom_errors.ErrDatabaseQuery)

		service := NewPostService(repo, post_mocks.NewContentRenderer(t), log, metrics)
		_, err := service.ListPosts(context.Background(), model.PostFilters{})
		assert.ErrorIs(t, err, custom_errors.ErrDatabaseQuery)
	})
}

func TestPostService_UpdatePost(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	tests := []struct {
		name    string
		update  *model.UpdatePostDTO
		mocks   func(repo *post_mocks.Repository)
		wantErr error
	}{
		{
			name:   "success",
			update: &model.UpdatePostDTO{Published: boolPtr(true)},
			mocks: func(repo *post_mocks.Repository) {
				repo.On("Update", mock.Anything, "post-1", mock.Anything).Return(&model.Post{ID: "post-1", Published: true}, nil)
			},
		},
		{
			name:    "empty update",
			update:  &model.UpdatePostDTO{},
			mocks:   func(repo *post_mocks.Repository) {},
			wantErr: custom_errors.ErrNoUpdateFields,
		},
		{
			name:    "blank title",
			update:  &model.UpdatePostDTO{Title: strPtr("  ")},
			mocks:   func(repo *post_mocks.Repository) {},
			wantErr: custom_errors.ErrInvalidInput,
		},
		{
			name:   "not found",
			update: &model.UpdatePostDTO{Title: strPtr("new")},
			mocks: func(repo *post_mocks.Repository) {
				repo.On("Update", mock.Anything, "post-1", mock.Anything).Return(nil, custom_errors.ErrPostNotFound)
			},
			wantErr: custom_errors.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := post_mocks.NewRepository(t)
			tt.mocks(repo)

			service := NewPostService(repo, post_mocks.NewContentRenderer(t), log, metrics)
			got, err := service.UpdatePost(context.Background(), "post-1", tt.update)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Published)
		})
	}
}

func TestPostService_DeletePost(t *testing.T) {
	log := logger.New("test")
	metrics := prometheus.NewPrometheusMetricsProvider()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "success"},
		{name: "not found", repoErr: custom_errors.ErrPostNotFound, wantErr: custom_errors.ErrPostNotFound},
		{name: "database error", repoErr: errors.New("boom"), wantErr: custom_errors.ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := post_mocks.NewRepository(t)
			repo.On("Delete", mock.Anything, "post-1").Return(tt.repoErr)

			service := NewPostService(repo, post_mocks.NewContentRenderer(t), log, metrics)
			err := service.DeletePost(context.Background(), "post-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
