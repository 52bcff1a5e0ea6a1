package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	ports "blog-platform/internal/domain/ports/output"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps sessions as JSON under session:<id>. Every successful
// Get pushes the expiry ttl into the future again.
type SessionStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	log     ports.Logger
	metrics ports.MetricsProvider
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration, log ports.Logger, metrics ports.MetricsProvider) *SessionStore {
	return &SessionStore{
		rdb:     rdb,
		ttl:     ttl,
		log:     log,
		metrics: metrics,
	}
}

func (s *SessionStore) Create(ctx context.Context, user *model.User) (*model.Session, error) {
	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(session)
	if err != nil {
		s.metrics.IncrementSessionOperations("create", false)
		s.log.Error("Failed to encode session", slog.String("user_id", user.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrSessionStore
	}

	stored, err := s.rdb.SetNX(ctx, sessionKey(session.ID), payload, s.ttl).Result()
	if err != nil || !stored {
		s.metrics.IncrementSessionOperations("create", false)
		if err == nil {
			s.log.Error("Session id collision", slog.String("user_id", user.ID))
		} else {
			s.log.Error("Failed to store session", slog.String("user_id", user.ID), slog.String("error", err.Error()))
		}
		return nil, custom_errors.ErrSessionStore
	}

	s.metrics.IncrementSessionOperations("create", true)
	s.log.Debug("Session created", slog.String("user_id", user.ID), slog.Duration("ttl", s.ttl))
	return session, nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	key := sessionKey(sessionID)

	var get *redis.StringCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			s.metrics.IncrementSessionOperations("get", true)
			return nil, custom_errors.ErrSessionNotFound
		}
		s.metrics.IncrementSessionOperations("get", false)
		s.log.Error("Failed to read session", slog.String("error", err.Error()))
		return nil, custom_errors.ErrSessionStore
	}

	var session model.Session
	if err := json.Unmarshal([]byte(get.Val()), &session); err != nil {
		s.metrics.IncrementSessionOperations("get", false)
		s.log.Error("Corrupt session payload", slog.String("error", err.Error()))
		return nil, custom_errors.ErrSessionStore
	}

	s.metrics.IncrementSessionOperations("get", true)
	session.ID = sessionID
	return &session, nil
}

// Delete is idempotent: removing an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	removed, err := s.rdb.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		s.metrics.IncrementSessionOperations("delete", false)
		s.log.Error("Failed to delete session", slog.String("error", err.Error()))
		return custom_errors.ErrSessionStore
	}
	s.metrics.IncrementSessionOperations("delete", true)
	s.log.Debug("Session deleted", slog.Int64("removed", removed))
	return nil
}

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
