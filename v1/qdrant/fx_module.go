package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/observability"
	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// FXModule provides *QdrantClient, exposes it as vectordb.Service, and
// registers its lifecycle hooks.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewClientWithDI,
		func(c *QdrantClient) vectordb.Service { return c },
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// QdrantParams groups the dependencies needed to create a Qdrant client.
type QdrantParams struct {
	fx.In

	Config   Config
	Logger   logger.Logger          `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

func NewClientWithDI(p QdrantParams) (*QdrantClient, error) {
	client, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}
	if p.Logger != nil {
		client.WithLogger(p.Logger)
	}
	if p.Observer != nil {
		client.WithObserver(p.Observer)
	}
	return client, nil
}

// RegisterQdrantLifecycle health-checks Qdrant on start and closes the
// connection on stop. An unhealthy server is logged, not fatal.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *QdrantClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fields := map[string]interface{}{"addr": client.Addr()}
			if err := client.HealthCheck(ctx); err != nil {
				if client.logger != nil {
					client.logger.Warn("qdrant not reachable on startup", err, fields)
				}
				return nil
			}
			if client.logger != nil {
				client.logger.Info("qdrant client started and healthy", nil, fields)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
