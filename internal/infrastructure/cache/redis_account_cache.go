package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisAccountCache caches positive email to account-id lookups in Redis.
// Every resource sync resolves the same handful of emails, so a short TTL
// keeps the accounts table off the hot path. Cache failures degrade to a
// repository lookup; only positive resolutions are stored, so a stale entry
// can never make a registered account look unknown or vice versa.
type RedisAccountCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisAccountCache creates a new Redis-backed account cache.
func NewRedisAccountCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisAccountCache {
	return &RedisAccountCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetAccountID returns the cached account id for an email, if present.
func (c *RedisAccountCache) GetAccountID(ctx context.Context, email string) (string, bool) {
	id, err := c.client.Get(ctx, accountKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.Debug().Err(err).Str("email", email).Msg("Account cache read failed")
		return "", false
	}
	return id, true
}

// SetAccountID stores a resolved account id for an email.
func (c *RedisAccountCache) SetAccountID(ctx context.Context, email, accountID string) {
	if err := c.client.Set(ctx, accountKey(email), accountID, c.ttl).Err(); err != nil {
		c.logger.Debug().Err(err).Str("email", email).Msg("Account cache write failed")
	}
}

func accountKey(email string) string {
	return "sync:account:" + email
}
