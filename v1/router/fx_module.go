package router

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/qdrant"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
	"github.com/Aleph-Alpha/infra-showcase/v1/tracer"
)

// FXModule provides the Handler and Server and ties the HTTP listener to the
// application lifecycle. It expects a router.Config, a logger.Logger and the
// redis and qdrant clients; tracer and metrics are used when present.
var FXModule = fx.Module("router",
	fx.Provide(
		func(c *redis.RedisClient) KeyValueStore { return c },
		func(c *qdrant.QdrantClient) VectorStore { return c },
		NewHandler,
		NewServerWithDI,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// ServerParams groups the dependencies needed to build the Server.
type ServerParams struct {
	fx.In

	Config  Config
	Handler *Handler
	Logger  logger.Logger
	Tracer  *tracer.Tracer           `optional:"true"`
	Metrics metrics.MetricsCollector `optional:"true"`
}

func NewServerWithDI(p ServerParams) *Server {
	return NewServer(p.Config, p.Handler, p.Logger, p.Tracer, p.Metrics)
}

// RegisterServerLifecycle starts listening on start and drains the server on
// stop. Fx starts hooks in dependency order, so the backend clients are
// already set up when the listener opens.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
