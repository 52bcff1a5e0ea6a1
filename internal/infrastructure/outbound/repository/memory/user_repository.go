package memory

import (
	"context"
	"log/slog"
	"sort"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"

	"github.com/google/uuid"
)

type UserRepository struct {
	log   ports.Logger
	store *Store
}

func NewUserRepository(store *Store, log ports.Logger) *UserRepository {
	return &UserRepository{store: store, log: log}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.takeFailure("user_create"); err != nil {
		return nil, err
	}
	if r.emailTaken(user.Email, "") {
		r.log.Debug("User email already taken", slog.String("email", user.Email))
		return nil, custom_errors.ErrEmailAlreadyExists
	}

	now := r.store.now()
	newUser := *user
	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}
	newUser.CreatedAt = now
	newUser.UpdatedAt = now
	r.store.users[newUser.ID] = &newUser

	return newUser.Sanitized(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.takeFailure("user_get_by_id"); err != nil {
		return nil, err
	}
	user, ok := r.store.users[id]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}
	return user.Sanitized(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			result := *user
			return &result, nil
		}
	}
	return nil, custom_errors.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*model.UserWithCount, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.takeFailure("user_list"); err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(r.store.users))
	for _, post := range r.store.posts {
		counts[post.AuthorID]++
	}

	result := make([]*model.UserWithCount, 0, len(r.store.users))
	for _, user := range r.store.users {
		result = append(result, &model.UserWithCount{
			User:      *user.Sanitized(),
			PostCount: counts[user.ID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, update *model.UpdateUserDTO) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if update.IsEmpty() {
		return nil, custom_errors.ErrNoUpdateFields
	}
	if err := r.store.takeFailure("user_update"); err != nil {
		return nil, err
	}

	user, ok := r.store.users[id]
	if !ok {
		return nil, custom_errors.ErrUserNotFound
	}
	if update.Email != nil && r.emailTaken(*update.Email, id) {
		return nil, custom_errors.ErrEmailAlreadyExists
	}

	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	if update.Image != nil {
		image := *update.Image
		user.Image = &image
	}
	user.UpdatedAt = r.store.now()

	return user.Sanitized(), nil
}

// Delete refuses to remove a user that still owns posts, like the posts.author_id foreign key.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.takeFailure("user_delete"); err != nil {
		return err
	}
	if _, ok := r.store.users[id]; !ok {
		return custom_errors.ErrUserNotFound
	}
	for _, post := range r.store.posts {
		if post.AuthorID == id {
			r.log.Debug("User still owns posts", slog.String("id", id))
			return custom_errors.ErrDatabaseQuery
		}
	}
	delete(r.store.users, id)
	return nil
}

// emailTaken must be called with the store lock held.
func (r *UserRepository) emailTaken(email, exceptID string) bool {
	for id, user := range r.store.users {
		if id != exceptID && user.Email == email {
			return true
		}
	}
	return false
}
