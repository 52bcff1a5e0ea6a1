package auth_service

import (
	"context"
	"errors"
	"log/slog"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	user_repository "blog-platform/internal/domain/ports/output/user"
)

type Service struct {
	userRepo user_repository.Repository
	hasher   ports.PasswordHasher
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewAuthService(
	userRepo user_repository.Repository,
	hasher ports.PasswordHasher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log,
		metrics:  metrics,
	}
}

// Login answers ErrInvalidCredentials both for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		s.metrics.IncrementAuthAttempts(false)
		return nil, custom_errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.metrics.IncrementAuthAttempts(false)
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Login for unknown email")
			return nil, custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		s.metrics.IncrementAuthAttempts(false)
		s.log.Debug("Login with wrong password", slog.String("user_id", user.ID))
		return nil, custom_errors.ErrInvalidCredentials
	}

	s.metrics.IncrementAuthAttempts(true)
	s.log.Info("User logged in", slog.String("user_id", user.ID))
	return user.Sanitized(), nil
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get current user", slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return user.Sanitized(), nil
}
