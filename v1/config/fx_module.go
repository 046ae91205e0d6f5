package config

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/qdrant"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
	"github.com/Aleph-Alpha/infra-showcase/v1/router"
	"github.com/Aleph-Alpha/infra-showcase/v1/tracer"
)

// FXModule loads the configuration once and provides each section to the
// module that consumes it.
var FXModule = fx.Module("config",
	fx.Provide(
		Load,
		Split,
	),
)

// Sections exposes every part of Config as its own fx value.
type Sections struct {
	fx.Out

	Logger  logger.Config
	Metrics metrics.Config
	Tracer  tracer.Config
	Redis   redis.Config
	Qdrant  qdrant.Config
	Server  router.Config
}

func Split(cfg *Config) Sections {
	return Sections{
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
		Tracer:  cfg.Tracer,
		Redis:   cfg.Redis,
		Qdrant:  cfg.Qdrant,
		Server:  cfg.Server,
	}
}
