package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/outbound/repository/postgres/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, name, image, created_at, updated_at`

type UserRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewUserRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (r *UserRepository) observe(queryType string, start time.Time, success bool) {
	r.metrics.IncrementDatabaseQueries(queryType, success)
	r.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	r.log.Debug("Creating new user", slog.String("email", user.Email))

	id := user.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()

	args := pgx.NamedArgs{
		"id":         id,
		"email":      user.Email,
		"name":       user.Name,
		"password":   user.Password,
		"image":      user.Image,
		"created_at": now,
		"updated_at": now,
	}

	query := `
		INSERT INTO users (id, email, name, password, image, created_at, updated_at)
		VALUES (@id, @email, @name, @password, @image, @created_at, @updated_at)
		RETURNING ` + userColumns

	createdUser, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.observe("user_create", start, false)
		if db.IsUniqueViolation(err) {
			r.log.Debug("User email already taken", slog.String("email", user.Email))
			return nil, custom_errors.ErrEmailAlreadyExists
		}
		r.log.Error("Error creating user", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("user_create", start, true)
	r.log.Debug("Successfully created user", slog.String("id", createdUser.ID))
	return createdUser, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	user, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.observe("user_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) || db.IsInvalidUUID(err) {
			r.log.Debug("User not found by id", slog.String("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("user_get_by_id", start, true)
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"email": email}
	query := `SELECT id, email, name, password, image, created_at, updated_at FROM users WHERE email = @email`

	var user model.User
	err := r.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Password,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		r.observe("user_get_by_email", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			r.log.Debug("User not found by email")
			return nil, custom_errors.ErrUserNotFound
		}
		r.log.Error("Error getting user by email", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("user_get_by_email", start, true)
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.UserWithCount, error) {
	start := time.Now()
	query := `
		SELECT u.id, u.email, u.name, u.image, u.created_at, u.updated_at, COUNT(p.id)
		FROM users u LEFT JOIN posts p ON p.author_id = u.id
		GROUP BY u.id
		ORDER BY u.created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.observe("user_list", start, false)
		r.log.Error("Error listing users", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	users := make([]*model.UserWithCount, 0)
	for rows.Next() {
		var user model.UserWithCount
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Image,
			&user.CreatedAt,
			&user.UpdatedAt,
			&user.PostCount,
		); err != nil {
			r.observe("user_list", start, false)
			r.log.Error("Error scanning user during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		users = append(users, &user)
	}

	if err = rows.Err(); err != nil {
		r.observe("user_list", start, false)
		r.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	r.observe("user_list", start, true)
	return users, nil
}

// Update expects update.Password to already be hashed.
func (r *UserRepository) Update(ctx context.Context, id string, update *model.UpdateUserDTO) (*model.User, error) {
	start := time.Now()
	if update.IsEmpty() {
		return nil, custom_errors.ErrNoUpdateFields
	}

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Email != nil {
		setClauses = append(setClauses, "email = @email")
		args["email"] = *update.Email
	}
	if update.Name != nil {
		setClauses = append(setClauses, "name = @name")
		args["name"] = *update.Name
	}
	if update.Password != nil {
		setClauses = append(setClauses, "password = @password")
		args["password"] = *update.Password
	}
	if update.Image != nil {
		setClauses = append(setClauses, "image = @image")
		args["image"] = *update.Image
	}

	setClauses = append(setClauses, "updated_at = GREATEST(@updated_at, created_at)")
	args["updated_at"] = time.Now().UTC()

	query := "UPDATE users SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, args))
	if err != nil {
		r.observe("user_update", start, false)
		switch {
		case errors.Is(err, pgx.ErrNoRows), db.IsInvalidUUID(err):
			r.log.Debug("User not found by id during Update", slog.String("id", id))
			return nil, custom_errors.ErrUserNotFound
		case db.IsUniqueViolation(err):
			return nil, custom_errors.ErrEmailAlreadyExists
		default:
			r.log.Error("Error updating user", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	r.observe("user_update", start, true)
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM users WHERE id = @id`

	result, err := r.db.Exec(ctx, query, args)
	if err != nil {
		r.observe("user_delete", start, false)
		if db.IsInvalidUUID(err) {
			return custom_errors.ErrUserNotFound
		}
		r.log.Error("Error deleting user", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	r.observe("user_delete", start, true)

	if result.RowsAffected() == 0 {
		return custom_errors.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Image,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
