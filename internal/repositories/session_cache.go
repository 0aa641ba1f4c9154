package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avilkov/travel-manager/internal/logger"
)

// ErrSessionNotCached is returned when a token has no cached resolution.
var ErrSessionNotCached = fmt.Errorf("session not found in cache")

// SessionCacheRepository caches token -> user id resolutions in Redis.
// The sessions table stays the source of truth; entries here expire on
// their own and are dropped eagerly on invalidation.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached sessions
}

// NewSessionCacheRepository creates a new repository instance with the given TTL.
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(token string) string {
	return "session:" + token
}

// GetUserID fetches the cached user id for a token.
func (r *SessionCacheRepository) GetUserID(ctx context.Context, token string) (int64, error) {
	key := sessionKey(token)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return 0, ErrSessionNotCached
		}
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	return userID, nil
}

// SetUserID caches a token resolution with the repository TTL.
func (r *SessionCacheRepository) SetUserID(ctx context.Context, token string, userID int64) error {
	key := sessionKey(token)
	err := r.client.Set(ctx, key, strconv.FormatInt(userID, 10), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Delete drops a cached resolution. Deleting an absent key is not an error.
func (r *SessionCacheRepository) Delete(ctx context.Context, token string) error {
	err := r.client.Del(ctx, sessionKey(token)).Err()

	logger.Log.Infow(
		"key", sessionKey(token),
		"error", err,
	)

	return err
}
