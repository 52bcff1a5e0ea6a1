package post_repository_postgres

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

const postWithAuthorColumns = `p.id, p.title, p.content, p.excerpt, p.cover_image, p.published, p.author_id,
		p.created_at, p.updated_at, u.id, u.name, u.image`

const postColumns = `id, title, content, excerpt, cover_image, published, author_id, created_at, updated_at`

type PostRepository struct {
	log     ports.Logger
	db      db.PgDB
	metrics ports.MetricsProvider
}

func NewPostRepository(db db.PgDB, log ports.Logger, metrics ports.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	p.log.Debug("Creating new post", slog.String("author_id", post.AuthorID), slog.String("title", post.Title))

	id := post.ID
	if id == "" {
		id = uuid.NewString()
	}
	now := time.Now().UTC()

	args := pgx.NamedArgs{
		"id":          id,
		"title":       post.Title,
		"content":     post.Content,
		"excerpt":     post.Excerpt,
		"cover_image": post.CoverImage,
		"published":   post.Published,
		"author_id":   post.AuthorID,
		"created_at":  now,
		"updated_at":  now,
	}

	query := `
		INSERT INTO posts (id, title, content, excerpt, cover_image, published, author_id, created_at, updated_at)
		VALUES (@id, @title, @content, @excerpt, @cover_image, @published, @author_id, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.observe("post_create", start, false)
		if db.IsForeignKeyViolation(err) || db.IsInvalidUUID(err) {
			p.log.Debug("Post author does not exist", slog.String("author_id", post.AuthorID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrAuthorNotFound
		}
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_create", start, true)
	p.log.Debug("Successfully created post", slog.String("id", createdPost.ID), slog.String("author_id", createdPost.AuthorID))
	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.PostWithAuthor, error) {
	start := time.Now()
	p.log.Debug("Getting post by ID", slog.String("id", id))

	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postWithAuthorColumns + `
		FROM posts p JOIN users u ON u.id = p.author_id
		WHERE p.id = @id`

	post, err := scanPostWithAuthor(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.observe("post_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) || db.IsInvalidUUID(err) {
			p.log.Debug("Post not found by id", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_get_by_id", start, true)
	return post, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorID string) ([]*model.PostSummary, error) {
	start := time.Now()
	p.log.Debug("Getting posts by author", slog.String("author_id", authorID))

	args := pgx.NamedArgs{"author_id": authorID}
	query := `SELECT id, title, excerpt, cover_image, created_at
		FROM posts WHERE author_id = @author_id ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_get_by_author", start, false)
		p.log.Error("Error getting posts by author", slog.String("author_id", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.PostSummary, 0)
	for rows.Next() {
		var summary model.PostSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.Title,
			&summary.Excerpt,
			&summary.CoverImage,
			&summary.CreatedAt,
		); err != nil {
			p.observe("post_get_by_author", start, false)
			p.log.Error("Error scanning post during GetByAuthor", slog.String("author_id", authorID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &summary)
	}

	if err = rows.Err(); err != nil {
		p.observe("post_get_by_author", start, false)
		p.log.Error("Error iterating rows during GetByAuthor", slog.String("author_id", authorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_get_by_author", start, true)
	return posts, nil
}

func (p *PostRepository) List(ctx context.Context, filters model.PostFilters) ([]*model.PostWithAuthor, error) {
	start := time.Now()
	args := pgx.NamedArgs{}
	query := `SELECT ` + postWithAuthorColumns + `
		FROM posts p JOIN users u ON u.id = p.author_id`

	if filters.Published != nil {
		query += " WHERE p.published = @published"
		args["published"] = *filters.Published
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts := make([]*model.PostWithAuthor, 0)
	for rows.Next() {
		post, err := scanPostWithAuthor(rows)
		if err != nil {
			p.observe("post_list", start, false)
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.observe("post_list", start, false)
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_list", start, true)
	p.log.Debug("Listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id string, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()
	if update.IsEmpty() {
		return nil, custom_errors.ErrNoUpdateFields
	}

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.Excerpt != nil {
		setClauses = append(setClauses, "excerpt = @excerpt")
		args["excerpt"] = *update.Excerpt
	}
	if update.CoverImage != nil {
		setClauses = append(setClauses, "cover_image = @cover_image")
		args["cover_image"] = *update.CoverImage
	}
	if update.Published != nil {
		setClauses = append(setClauses, "published = @published")
		args["published"] = *update.Published
	}

	// updated_at never drops below created_at.
	setClauses = append(setClauses, "updated_at = GREATEST(@updated_at, created_at)")
	args["updated_at"] = time.Now().UTC()

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.observe("post_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) || db.IsInvalidUUID(err) {
			p.log.Debug("Post not found by id during Update", slog.String("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.String("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_update", start, true)
	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.observe("post_delete", start, false)
		if db.IsInvalidUUID(err) {
			return custom_errors.ErrPostNotFound
		}
		p.log.Error("Error deleting post", slog.String("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.observe("post_delete", start, true)

	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

func (p *PostRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	start := time.Now()
	args := pgx.NamedArgs{"author_id": authorID}
	query := `DELETE FROM posts WHERE author_id = @author_id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.observe("post_delete_by_author", start, false)
		p.log.Error("Error deleting posts by author", slog.String("author_id", authorID), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	p.observe("post_delete_by_author", start, true)
	p.log.Debug("Deleted posts by author", slog.String("author_id", authorID), slog.Int64("count", result.RowsAffected()))
	return result.RowsAffected(), nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.CoverImage,
		&post.Published,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func scanPostWithAuthor(row pgx.Row) (*model.PostWithAuthor, error) {
	var post model.PostWithAuthor
	var author model.AuthorSummary
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.CoverImage,
		&post.Published,
		&post.AuthorID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&author.ID,
		&author.Name,
		&author.Image,
	)
	if err != nil {
		return nil, err
	}
	post.Author = &author
	return &post, nil
}
