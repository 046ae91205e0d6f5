// Package redis wraps github.com/redis/go-redis/v9 for a standalone Redis
// server.
//
// The client exposes the string and keyspace commands the service needs
// (Ping, Get, Set, MGet, Keys, Scan, Delete, Exists) and reports every call
// to an optional observability.Observer, which the metrics package turns
// into backend_operation_duration_seconds samples.
//
// Basic use:
//
//	client, err := redis.NewClient(redis.Config{Host: "localhost", Port: 6379})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	if err := client.Set(ctx, "message", "Redis", 0); err != nil {
//		return err
//	}
//	v, err := client.Get(ctx, "message")
//	if redis.IsNilError(err) {
//		// key does not exist
//	}
//
// With fx, include FXModule and provide a Config. A Logger and an Observer
// are picked up from the container when present. The start hook pings the
// server but never fails startup.
//
// Configuration keys (prefix SHOWCASE_REDIS_): HOST, PORT, DB, USERNAME,
// PASSWORD, POOL_SIZE, DIAL_TIMEOUT, READ_TIMEOUT, TLS_ENABLED, ...
package redis
