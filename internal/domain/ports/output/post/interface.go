package post_repository

import (
	"context"

	model "blog-platform/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.PostWithAuthor, error)
	GetByAuthor(ctx context.Context, authorID string) ([]*model.PostSummary, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.PostWithAuthor, error)
	Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
}
