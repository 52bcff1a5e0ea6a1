package post_service

import (
	"context"

	model "blog-platform/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --filename Service.go
type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	GetPostByID(ctx context.Context, id string, format model.ContentFormat) (*model.PostWithAuthor, error)
	ListPosts(ctx context.Context, filters model.PostFilters) ([]*model.PostWithAuthor, error)
	UpdatePost(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
}
