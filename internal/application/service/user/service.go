package user_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	post_repository "blog-platform/internal/domain/ports/output/post"
	user_repository "blog-platform/internal/domain/ports/output/user"
)

type Service struct {
	userRepo user_repository.Repository
	postRepo post_repository.Repository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	log      ports.Logger
	metrics  ports.MetricsProvider
}

func NewUserService(
	userRepo user_repository.Repository,
	postRepo post_repository.Repository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *Service {
	return &Service{
		userRepo: userRepo,
		postRepo: postRepo,
		uow:      uow,
		hasher:   hasher,
		log:      log,
		metrics:  metrics,
	}
}

func (s *Service) CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error) {
	if user == nil || strings.TrimSpace(user.Email) == "" || strings.TrimSpace(user.Name) == "" || !validPassword(user.Password) {
		s.metrics.IncrementUserOperations("create", false)
		return nil, custom_errors.ErrInvalidInput
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.metrics.IncrementUserOperations("create", false)
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, custom_errors.ErrPasswordHash
	}

	created, err := s.userRepo.Create(ctx, &model.User{
		Email:    user.Email,
		Name:     user.Name,
		Password: hashed,
		Image:    user.Image,
	})
	if err != nil {
		s.metrics.IncrementUserOperations("create", false)
		switch {
		case errors.Is(err, custom_errors.ErrEmailAlreadyExists):
			s.log.Debug("Email already registered", slog.String("email", user.Email))
			return nil, custom_errors.ErrEmailAlreadyExists
		default:
			s.log.Error("Failed to create user", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementUserOperations("create", true)
	s.log.Info("User created", slog.String("id", created.ID))
	return created.Sanitized(), nil
}

func (s *Service) GetUserByID(ctx context.Context, id string) (*model.UserDetailed, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		s.metrics.IncrementUserOperations("get", false)
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found", slog.String("id", id))
			return nil, custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to get user by id", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	posts, err := s.postRepo.GetByAuthor(ctx, id)
	if err != nil {
		s.metrics.IncrementUserOperations("get", false)
		s.log.Error("Failed to get posts for user", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementUserOperations("get", true)
	return &model.UserDetailed{User: *user.Sanitized(), Posts: posts}, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.UserWithCount, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.metrics.IncrementUserOperations("list", false)
		s.log.Error("Failed to list users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	for _, u := range users {
		u.Password = ""
	}
	s.metrics.IncrementUserOperations("list", true)
	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, id string, update *model.UpdateUserDTO) (*model.User, error) {
	if update.IsEmpty() {
		s.metrics.IncrementUserOperations("update", false)
		return nil, custom_errors.ErrNoUpdateFields
	}
	if (update.Email != nil && strings.TrimSpace(*update.Email) == "") ||
		(update.Name != nil && strings.TrimSpace(*update.Name) == "") ||
		(update.Password != nil && !validPassword(*update.Password)) {
		s.metrics.IncrementUserOperations("update", false)
		return nil, custom_errors.ErrInvalidInput
	}

	changes := *update
	if update.Password != nil {
		hashed, err := s.hasher.Hash(*update.Password)
		if err != nil {
			s.metrics.IncrementUserOperations("update", false)
			s.log.Error("Failed to hash password", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPasswordHash
		}
		changes.Password = &hashed
	}

	updated, err := s.userRepo.Update(ctx, id, &changes)
	if err != nil {
		s.metrics.IncrementUserOperations("update", false)
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found for update", slog.String("id", id))
			return nil, custom_errors.ErrUserNotFound
		case errors.Is(err, custom_errors.ErrEmailAlreadyExists):
			return nil, custom_errors.ErrEmailAlreadyExists
		case errors.Is(err, custom_errors.ErrNoUpdateFields):
			return nil, custom_errors.ErrNoUpdateFields
		default:
			s.log.Error("Failed to update user", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	s.metrics.IncrementUserOperations("update", true)
	s.log.Info("User updated", slog.String("id", id))
	return updated.Sanitized(), nil
}

func validPassword(password string) bool {
	return password != "" && len(password) <= model.MaxPasswordBytes
}

// DeleteUser removes the user's posts and then the user in one transaction.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	deleted, err := tx.PostRepository().DeleteByAuthor(ctx, id)
	if err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		s.log.Error("Failed to delete posts of user", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.UserRepository().Delete(ctx, id); err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		switch {
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("User not found for delete", slog.String("id", id))
			return custom_errors.ErrUserNotFound
		default:
			s.log.Error("Failed to delete user", slog.String("id", id), slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.metrics.IncrementUserOperations("delete", false)
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementUserOperations("delete", true)
	s.metrics.RecordCascadeDeletedPosts(deleted)
	s.log.Info("User deleted", slog.String("id", id), slog.Int64("deleted_posts", deleted))
	return nil
}
