// Command server runs the infrastructure showcase: a small HTTP API that
// exercises Redis and Qdrant and reports their health.
package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/Aleph-Alpha/infra-showcase/v1/config"
	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/qdrant"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
	"github.com/Aleph-Alpha/infra-showcase/v1/router"
	"github.com/Aleph-Alpha/infra-showcase/v1/tracer"
)

func main() {
	fx.New(
		config.FXModule,
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		redis.FXModule,
		qdrant.FXModule,
		router.FXModule,
		fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap}
		}),
	).Run()
}
