package redis

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/observability"
)

// FXModule provides *RedisClient and manages its lifecycle.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    redis.FXModule,
//	    fx.Provide(func() redis.Config { return cfg.Redis }),
//	)
var FXModule = fx.Module("redis",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// RedisParams groups the dependencies needed to create a Redis client.
type RedisParams struct {
	fx.In

	Config   Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI builds the client and attaches the optional logger and
// observer from the container.
func NewClientWithDI(params RedisParams) (*RedisClient, error) {
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	if params.Logger != nil {
		client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	return client, nil
}

// RedisLifecycleParams groups the dependencies needed for Redis lifecycle management.
type RedisLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RedisClient
}

// RegisterRedisLifecycle pings Redis on start and closes the client on stop.
//
// A failed ping is logged but does not abort startup: the service stays up
// and reports Redis as unavailable on /health until the server comes back.
func RegisterRedisLifecycle(params RedisLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			client := params.Client
			if err := client.Ping(ctx); err != nil {
				if client.logger != nil {
					client.logger.Warn("redis not reachable on startup", err, map[string]interface{}{
						"addr": client.Addr(),
					})
				}
				return nil
			}
			if client.logger != nil {
				client.logger.Info("redis client started and healthy", nil, map[string]interface{}{
					"addr": client.Addr(),
				})
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Client.Close()
		},
	})
}
