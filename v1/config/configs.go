package config

import (
	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/qdrant"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
	"github.com/Aleph-Alpha/infra-showcase/v1/router"
	"github.com/Aleph-Alpha/infra-showcase/v1/tracer"
)

// Config is the full service configuration. Each section is handed to the
// package that owns it.
type Config struct {
	Logger  logger.Config  `yaml:"logger" mapstructure:"logger"`
	Metrics metrics.Config `yaml:"metrics" mapstructure:"metrics"`
	Tracer  tracer.Config  `yaml:"tracer" mapstructure:"tracer"`
	Redis   redis.Config   `yaml:"redis" mapstructure:"redis"`
	Qdrant  qdrant.Config  `yaml:"qdrant" mapstructure:"qdrant"`
	Server  router.Config  `yaml:"server" mapstructure:"server"`
}

const (
	// EnvPrefix namespaces every environment override, e.g. SHOWCASE_REDIS_HOST.
	EnvPrefix = "SHOWCASE"

	// ConfigFileEnv names an explicit YAML file to load. A missing file is an
	// error when it is set.
	ConfigFileEnv = "CONFIG_FILE"

	DefaultServiceName = "infra-showcase"
	DefaultEnvFile     = ".env"
)

// defaults lists every key the loader knows about. Environment variables only
// reach keys that appear here or in a config file.
var defaults = map[string]any{
	"logger.level":          logger.Info,
	"logger.service_name":   DefaultServiceName,
	"logger.enable_tracing": true,

	"metrics.address":                   metrics.DefaultMetricsAddress,
	"metrics.enable_default_collectors": true,
	"metrics.namespace":                 "showcase",
	"metrics.service_name":              DefaultServiceName,
	"metrics.disabled":                  false,

	"tracer.service_name":  DefaultServiceName,
	"tracer.app_env":       "development",
	"tracer.enable_export": false,
	"tracer.endpoint":      "",
	"tracer.insecure":      true,

	"redis.host":                     redis.DefaultHost,
	"redis.port":                     redis.DefaultPort,
	"redis.username":                 "",
	"redis.password":                 "",
	"redis.db":                       0,
	"redis.pool_size":                0,
	"redis.min_idle_conns":           0,
	"redis.max_conn_age":             "0s",
	"redis.pool_timeout":             "0s",
	"redis.idle_timeout":             redis.DefaultIdleTimeout.String(),
	"redis.max_retries":              redis.DefaultMaxRetries,
	"redis.min_retry_backoff":        redis.DefaultMinRetryBackoff.String(),
	"redis.max_retry_backoff":        redis.DefaultMaxRetryBackoff.String(),
	"redis.dial_timeout":             redis.DefaultDialTimeout.String(),
	"redis.read_timeout":             redis.DefaultReadTimeout.String(),
	"redis.write_timeout":            "0s",
	"redis.tls.enabled":              false,
	"redis.tls.ca_cert_path":         "",
	"redis.tls.client_cert_path":     "",
	"redis.tls.client_key_path":      "",
	"redis.tls.insecure_skip_verify": false,
	"redis.tls.server_name":          "",

	"qdrant.endpoint":            qdrant.DefaultEndpoint,
	"qdrant.port":                qdrant.DefaultPort,
	"qdrant.api_key":             "",
	"qdrant.use_tls":             false,
	"qdrant.timeout":             qdrant.DefaultTimeout.String(),
	"qdrant.batch_size":          qdrant.DefaultBatchSize,
	"qdrant.check_compatibility": false,

	"server.address":          router.DefaultAddress,
	"server.read_timeout":     "10s",
	"server.write_timeout":    "10s",
	"server.idle_timeout":     "60s",
	"server.shutdown_timeout": router.DefaultShutdownTimeout.String(),
	"server.health_timeout":   router.DefaultHealthTimeout.String(),
	"server.fan_out_limit":    router.DefaultFanOutLimit,

	"server.demo.message_key":   "message",
	"server.demo.message_value": "Redis",
	"server.demo.counter_key":   "counter",
	"server.demo.counter_value": router.DefaultCounterValue,
	"server.demo.cache_pattern": "*",
	"server.demo.collection":    router.DefaultCollection,
	"server.demo.vector_size":   router.DefaultVectorSize,
	"server.demo.distance":      "Cosine",
	"server.demo.default_limit": router.DefaultSearchLimit,
	"server.demo.max_limit":     router.DefaultMaxSearchLimit,
}
