package user_service

import (
	"context"

	model "blog-platform/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/user --outpkg mocks --filename Service.go
type Service interface {
	CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.UserDetailed, error)
	ListUsers(ctx context.Context) ([]*model.UserWithCount, error)
	UpdateUser(ctx context.Context, id string, update *model.UpdateUserDTO) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
}
