package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	ports "blog-platform/internal/domain/ports/output"
	"blog-platform/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// NewClient dials redis and fails fast when the server does not answer a ping.
func NewClient(cfg config.Redis, log ports.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	log.Info("Redis session backend ready", slog.String("addr", addr), slog.Int("db", cfg.DB))
	return rdb, nil
}
