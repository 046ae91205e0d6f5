package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the set of Redis operations the service uses.
//
// This interface is implemented by the concrete *RedisClient type.
type Client interface {
	Ping(ctx context.Context) error
	PoolStats() *redis.PoolStats
	Client() redis.UniversalClient
	Close() error

	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	MGet(ctx context.Context, keys ...string) ([]interface{}, error)

	Delete(ctx context.Context, keys ...string) (int64, error)
	Exists(ctx context.Context, keys ...string) (int64, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Scan(ctx context.Context, match string, count int64) ([]string, error)
}

var _ Client = (*RedisClient)(nil)
