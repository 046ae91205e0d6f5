package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
)

// FXModule provides the *Tracer and flushes it on application stop.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers an OnStop hook that shuts down the
// tracer provider, flushing any spans still queued for export.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer, log logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down tracer", nil, nil)
			return t.Shutdown(ctx)
		},
	})
}
