// Seed tool: inserts demo users and posts. Running it twice leaves the
// database unchanged: users are upserted on email and post ids are derived
// from the title.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"blog-platform/internal/infrastructure/config"
	"blog-platform/internal/infrastructure/logger"
	"blog-platform/internal/infrastructure/outbound/password/bcrypt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var postNamespace = uuid.MustParse("6f1c2a8e-4b1d-4c39-9a52-3f0f4a9d1e77")

func main() {
	var cost int
	flag.IntVar(&cost, "bcrypt-cost", bcrypt.DefaultCost, "bcrypt cost for seeded passwords")
	flag.Parse()

	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	ctx := context.Background()

	start := time.Now()
	if err := seed(ctx, cfg.Database.DSN(), bcrypt.NewHasher(cost), log); err != nil {
		log.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("Database seeded", slog.Duration("took", time.Since(start).Truncate(time.Millisecond)))
}

func seed(ctx context.Context, dsn string, hasher *bcrypt.Hasher, log *logger.Logger) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	authorIDs := make(map[string]string, len(users))
	for _, u := range users {
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.Email, err)
		}

		var id string
		err = tx.QueryRow(ctx, `
			INSERT INTO users (id, email, name, password, image)
			VALUES (@id, @email, @name, @password, @image)
			ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
			RETURNING id`,
			pgx.NamedArgs{
				"id":       uuid.NewString(),
				"email":    u.Email,
				"name":     u.Name,
				"password": hash,
				"image":    u.Image,
			}).Scan(&id)
		if err != nil {
			return fmt.Errorf("upsert user %s: %w", u.Email, err)
		}
		authorIDs[u.Email] = id
	}

	batch := &pgx.Batch{}
	for _, p := range posts {
		batch.Queue(`
			INSERT INTO posts (id, title, content, excerpt, cover_image, published, author_id)
			VALUES (@id, @title, @content, @excerpt, @cover_image, @published, @author_id)
			ON CONFLICT (id) DO NOTHING`,
			pgx.NamedArgs{
				"id":          uuid.NewSHA1(postNamespace, []byte(p.Title)).String(),
				"title":       p.Title,
				"content":     p.Content,
				"excerpt":     p.Excerpt,
				"cover_image": p.CoverImage,
				"published":   p.Published,
				"author_id":   authorIDs[p.AuthorEmail],
			})
	}

	br := tx.SendBatch(ctx, batch)
	var inserted int64
	for range posts {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return fmt.Errorf("insert posts: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("batch close: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	log.Info("Seed data written",
		slog.Int("users", len(users)),
		slog.Int("posts", len(posts)),
		slog.Int64("new_posts", inserted))
	return nil
}
