// Package sessions tracks issued bearer tokens in Redis so logout can
// revoke them before their natural expiry. Keys are JWT IDs; Redis TTL
// handles expiry cleanup on its own.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Registry is the server-side session store.
type Registry interface {
	Register(ctx context.Context, jti, userID string, ttl time.Duration) error
	IsActive(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

type RedisRegistry struct {
	client *redis.Client
}

var _ Registry = (*RedisRegistry)(nil)

func NewRedisRegistry(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

func (r *RedisRegistry) Register(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+jti, userID, ttl).Err()
}

func (r *RedisRegistry) IsActive(ctx context.Context, jti string) (bool, error) {
	_, err := r.client.Get(ctx, keyPrefix+jti).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RedisRegistry) Revoke(ctx context.Context, jti string) error {
	return r.client.Del(ctx, keyPrefix+jti).Err()
}
