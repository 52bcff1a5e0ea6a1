package redis_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"blog-platform/internal/custom_errors"
	model "blog-platform/internal/domain/models"
	"blog-platform/internal/infrastructure/config"
	"blog-platform/internal/infrastructure/logger"
	"blog-platform/internal/infrastructure/outbound/metrics/prometheus"
	session_redis "blog-platform/internal/infrastructure/outbound/session/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSessionStore(t *testing.T, ttl time.Duration) (*session_redis.SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	log := logger.New("test")
	client, err := session_redis.NewClient(config.Redis{Address: mr.Host(), Port: port, PoolSize: 2}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return session_redis.NewSessionStore(client, ttl, log, prometheus.NewPrometheusMetricsProvider()), mr
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, &model.User{ID: "user-1", Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)

	got, err := store.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestSessionStore_Expires(t *testing.T) {
	store, mr := setupSessionStore(t, time.Minute)
	ctx := context.Background()

	created, err := store.Create(ctx, &model.User{ID: "user-1", Email: "a@x.com"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
}

func TestSessionStore_GetExtendsExpiry(t *testing.T) {
	store, mr := setupSessionStore(t, time.Minute)
	ctx := context.Background()

	created, err := store.Create(ctx, &model.User{ID: "user-1", Email: "a@x.com"})
	require.NoError(t, err)

	mr.FastForward(40 * time.Second)
	_, err = store.Get(ctx, created.ID)
	require.NoError(t, err)

	mr.FastForward(40 * time.Second)
	_, err = store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("session:"+created.ID))
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	store, mr := setupSessionStore(t, time.Hour)
	require.NoError(t, mr.Set("session:broken", "not-json"))

	_, err := store.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, custom_errors.ErrSessionStore)
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := setupSessionStore(t, time.Hour)
	ctx := context.Background()

	created, err := store.Create(ctx, &model.User{ID: "user-1", Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrSessionNotFound)
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	mr.Close()

	_, err = session_redis.NewClient(config.Redis{Address: "127.0.0.1", Port: port}, logger.New("test"))
	assert.Error(t, err)
}
