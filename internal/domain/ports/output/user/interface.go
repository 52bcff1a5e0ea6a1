package user_repository

import (
	"context"

	model "blog-platform/internal/domain/models"
)

// Repository never returns password hashes except from GetByEmail.
//
//go:generate mockery --name Repository --dir . --output ../../../../../mocks/user --outpkg mocks --filename Repository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.UserWithCount, error)
	Update(ctx context.Context, id string, update *model.UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id string) error
}
