package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/infra-showcase/v1/qdrant"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
	"github.com/Aleph-Alpha/infra-showcase/v1/router"
	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// isolatedLoader ignores any .env, CONFIG_FILE or config.yaml around the test.
func isolatedLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	t.Setenv(ConfigFileEnv, "")
	base := []Option{WithEnvFile(""), WithSearchPath(t.TempDir())}
	return NewLoader(append(base, opts...)...)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := isolatedLoader(t).Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, DefaultServiceName, cfg.Logger.ServiceName)
	assert.Equal(t, ":9090", cfg.Metrics.Address)
	assert.False(t, cfg.Tracer.EnableExport)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 5*time.Second, cfg.Redis.DialTimeout)

	assert.Equal(t, "localhost", cfg.Qdrant.Endpoint)
	assert.Equal(t, 6334, cfg.Qdrant.Port)
	assert.Equal(t, qdrant.DefaultTimeout, cfg.Qdrant.Timeout)

	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Address)
	assert.Equal(t, 2*time.Second, cfg.Server.HealthTimeout)
	assert.Equal(t, "test_vectors", cfg.Server.Demo.Collection)
	assert.Equal(t, uint64(4), cfg.Server.Demo.VectorSize)
	assert.Equal(t, vectordb.Cosine, cfg.Server.Demo.Distance)
	require.NotNil(t, cfg.Server.Demo.CounterValue)
	assert.Equal(t, 42, *cfg.Server.Demo.CounterValue)
	assert.Equal(t, 3, cfg.Server.Demo.DefaultLimit)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("SHOWCASE_REDIS_HOST", "redis.internal")
	t.Setenv("SHOWCASE_REDIS_TLS_ENABLED", "true")
	t.Setenv("SHOWCASE_QDRANT_PORT", "7334")
	t.Setenv("SHOWCASE_SERVER_HEALTH_TIMEOUT", "500ms")
	t.Setenv("SHOWCASE_SERVER_DEMO_DISTANCE", "dot")
	t.Setenv("SHOWCASE_SERVER_DEMO_COUNTER_VALUE", "0")

	cfg, err := isolatedLoader(t).Load()
	require.NoError(t, err)

	assert.Equal(t, "redis.internal", cfg.Redis.Host)
	assert.True(t, cfg.Redis.TLS.Enabled)
	assert.Equal(t, 7334, cfg.Qdrant.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.Server.HealthTimeout)
	assert.Equal(t, vectordb.Dot, cfg.Server.Demo.Distance)
	require.NotNil(t, cfg.Server.Demo.CounterValue)
	assert.Equal(t, 0, *cfg.Server.Demo.CounterValue)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "showcase.yaml", `
redis:
  host: cache
  db: 2
server:
  address: 127.0.0.1:8080
  demo:
    collection: docs
    vector_size: 2
    query_vector: [0.5, 0.5]
    points:
      - id: 7
        vector: [1, 0]
        payload:
          text: seven
`)

	t.Run("explicit path", func(t *testing.T) {
		t.Setenv("SHOWCASE_REDIS_DB", "5")

		cfg, err := isolatedLoader(t, WithConfigFile(path)).Load()
		require.NoError(t, err)

		assert.Equal(t, "cache", cfg.Redis.Host)
		assert.Equal(t, 5, cfg.Redis.DB, "environment wins over the file")
		assert.Equal(t, "127.0.0.1:8080", cfg.Server.Address)
		assert.Equal(t, "docs", cfg.Server.Demo.Collection)
		assert.Equal(t, []float32{0.5, 0.5}, cfg.Server.Demo.QueryVector)
		require.Len(t, cfg.Server.Demo.Points, 1)
		assert.Equal(t, uint64(7), cfg.Server.Demo.Points[0].ID)
		assert.Equal(t, []float32{1, 0}, cfg.Server.Demo.Points[0].Vector)
		assert.Equal(t, "seven", cfg.Server.Demo.Points[0].Payload["text"])
	})

	t.Run("CONFIG_FILE", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, path)

		l := NewLoader(WithEnvFile(""))
		cfg, err := l.Load()
		require.NoError(t, err)

		assert.Equal(t, "cache", cfg.Redis.Host)
		assert.Equal(t, path, l.ConfigFileUsed())
	})

	t.Run("config.yaml in search path", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("qdrant:\n  endpoint: vectors\n"), 0o600))

		cfg, err := isolatedLoader(t, WithSearchPath(dir)).Load()
		require.NoError(t, err)

		assert.Equal(t, "vectors", cfg.Qdrant.Endpoint)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := isolatedLoader(t, WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))).Load()
		assert.Error(t, err)
	})
}

func TestEnvFile(t *testing.T) {
	const key = "SHOWCASE_QDRANT_API_KEY"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := writeFile(t, ".env", key+"=from-dotenv\n")

	cfg, err := isolatedLoader(t, WithEnvFile(path)).Load()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.Qdrant.ApiKey)

	_, err = isolatedLoader(t, WithEnvFile(filepath.Join(t.TempDir(), "absent.env"))).Load()
	assert.NoError(t, err, "a missing .env is not an error")
}

func TestValidation(t *testing.T) {
	for name, env := range map[string][2]string{
		"log level":     {"SHOWCASE_LOGGER_LEVEL", "verbose"},
		"redis port":    {"SHOWCASE_REDIS_PORT", "70000"},
		"distance":      {"SHOWCASE_SERVER_DEMO_DISTANCE", "chebyshev"},
		"address":       {"SHOWCASE_SERVER_ADDRESS", "not an address"},
		"max limit":     {"SHOWCASE_SERVER_DEMO_MAX_LIMIT", "-1"},
		"qdrant batch":  {"SHOWCASE_QDRANT_BATCH_SIZE", "-5"},
		"fan out limit": {"SHOWCASE_SERVER_FAN_OUT_LIMIT", "-2"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])

			_, err := isolatedLoader(t).Load()
			assert.ErrorContains(t, err, "config validation failed")
		})
	}
}

func TestFXModuleProvidesSections(t *testing.T) {
	t.Setenv("SHOWCASE_REDIS_HOST", "fx-redis")
	t.Setenv(ConfigFileEnv, "")

	var (
		redisCfg  redis.Config
		serverCfg router.Config
	)
	app := fxtest.New(t,
		fx.Provide(func() (*Config, error) {
			return NewLoader(WithEnvFile(""), WithSearchPath(t.TempDir())).Load()
		}),
		fx.Provide(Split),
		fx.Populate(&redisCfg, &serverCfg),
	)
	app.RequireStart()
	defer app.RequireStop()

	assert.Equal(t, "fx-redis", redisCfg.Host)
	assert.Equal(t, router.DefaultAddress, serverCfg.Address)
}
