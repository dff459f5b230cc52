package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevokedKeyPrefix namespaces revoked token IDs in Redis.
const RevokedKeyPrefix = "auth:token:revoked:"

// RedisRevocations stores revoked token IDs as expiring Redis keys.
type RedisRevocations struct {
	client *redis.Client
}

// NewRedisRevocations wraps an existing client.
func NewRedisRevocations(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{client: client}
}

// Revoke marks jti revoked for ttl.
func (r *RedisRevocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return r.client.Set(ctx, RevokedKeyPrefix+jti, "revoked", ttl).Err()
}

// IsRevoked reports whether jti has been revoked and not yet expired.
func (r *RedisRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, RevokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Name implements ports.HealthChecker.
func (r *RedisRevocations) Name() string { return "redis" }

// HealthCheck implements ports.HealthChecker.
func (r *RedisRevocations) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
