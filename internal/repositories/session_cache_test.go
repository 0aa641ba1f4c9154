package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSessionCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewSessionCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get resolution", func(t *testing.T) {
		err := repo.SetUserID(ctx, "tok-1", 42)
		assert.NoError(t, err)

		userID, err := repo.GetUserID(ctx, "tok-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("Missing token reports a cache miss", func(t *testing.T) {
		_, err := repo.GetUserID(ctx, "tok-unknown")
		assert.ErrorIs(t, err, ErrSessionNotCached)
	})

	t.Run("Delete drops the entry", func(t *testing.T) {
		assert.NoError(t, repo.SetUserID(ctx, "tok-2", 7))
		assert.NoError(t, repo.Delete(ctx, "tok-2"))

		_, err := repo.GetUserID(ctx, "tok-2")
		assert.ErrorIs(t, err, ErrSessionNotCached)
	})

	t.Run("Delete of an absent token is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, "tok-absent"))
	})

	t.Run("Cached resolution expires", func(t *testing.T) {
		assert.NoError(t, repo.SetUserID(ctx, "tok-3", 9))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := repo.GetUserID(ctx, "tok-3")
		assert.ErrorIs(t, err, ErrSessionNotCached)
	})
}
