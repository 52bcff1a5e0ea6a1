package auth_service

import (
	"context"

	model "blog-platform/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/auth --outpkg mocks --filename Service.go
type Service interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}
