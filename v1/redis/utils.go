package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ping checks if the Redis server is reachable and responsive.
func (r *RedisClient) Ping(ctx context.Context) error {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	err := r.client.Ping(ctx).Err()
	r.observeOperation("ping", "", "", time.Since(start), err, 0, nil)
	return err
}

// PoolStats returns connection pool statistics.
func (r *RedisClient) PoolStats() *redis.PoolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.client.PoolStats()
}

// Get retrieves the value associated with the given key.
// Returns Nil if the key does not exist.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Get(ctx, key).Result()
	obsErr := err
	if IsNilError(err) {
		// a miss is not a failure
		obsErr = nil
	}
	r.observeOperation("get", key, "", time.Since(start), obsErr, int64(len(result)), nil)
	return result, err
}

// Set sets the value for the given key. A zero ttl means no expiry.
func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	err := r.client.Set(ctx, key, value, ttl).Err()
	var metadata map[string]interface{}
	if ttl > 0 {
		metadata = map[string]interface{}{"ttl": ttl.String()}
	}
	r.observeOperation("set", key, "", time.Since(start), err, 0, metadata)
	return err
}

// MGet retrieves the values of multiple keys at once, in key order.
// Missing keys yield nil entries.
func (r *RedisClient) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.MGet(ctx, keys...).Result()
	resource := ""
	if len(keys) > 0 {
		resource = keys[0]
	}
	r.observeOperation("mget", resource, "", time.Since(start), err, int64(len(result)), map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// Delete deletes one or more keys and returns how many existed.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Del(ctx, keys...).Result()
	resource := ""
	if len(keys) > 0 {
		resource = keys[0]
	}
	r.observeOperation("delete", resource, "", time.Since(start), err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// Exists returns how many of the given keys exist.
func (r *RedisClient) Exists(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Exists(ctx, keys...).Result()
	r.observeOperation("exists", "", "", time.Since(start), err, result, map[string]interface{}{
		"key_count": len(keys),
	})
	return result, err
}

// Keys returns all keys matching pattern. KEYS blocks the server while it
// walks the keyspace; prefer Scan on large databases.
func (r *RedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, err := r.client.Keys(ctx, pattern).Result()
	r.observeOperation("keys", pattern, "", time.Since(start), err, int64(len(result)), nil)
	return result, err
}

// Scan walks the keyspace with SCAN and returns every key matching match.
// count is a per-round-trip hint; 0 lets the server choose.
// Keys added or removed during the walk may or may not be returned.
func (r *RedisClient) Scan(ctx context.Context, match string, count int64) ([]string, error) {
	start := time.Now()
	r.mu.RLock()
	defer r.mu.RUnlock()

	var keys []string
	iter := r.client.Scan(ctx, 0, match, count).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	err := iter.Err()
	r.observeOperation("scan", match, "", time.Since(start), err, int64(len(keys)), nil)
	if err != nil {
		return nil, err
	}
	return keys, nil
}
