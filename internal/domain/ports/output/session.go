package ports

import (
	"context"

	model "blog-platform/internal/domain/models"
)

//go:generate mockery --name SessionStore --dir . --output ../../../../mocks/auth --outpkg mocks --filename SessionStore.go
type SessionStore interface {
	Create(ctx context.Context, user *model.User) (*model.Session, error)
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
