package ports

import (
	"context"

	model "blog-platform/internal/domain/models"
)

//go:generate mockery --name PostsClient --dir . --output ../../../../mocks/client --outpkg mocks --filename PostsClient.go
type PostsClient interface {
	ListPosts(ctx context.Context) ([]*model.PostWithAuthor, error)
	GetPost(ctx context.Context, id string) (*model.PostWithAuthor, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
}
