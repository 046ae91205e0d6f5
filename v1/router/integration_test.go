package router

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/qdrant"
	"github.com/Aleph-Alpha/infra-showcase/v1/redis"
)

// startBackend runs a container and returns the host and mapped port of
// the given exposed port.
func startBackend(ctx context.Context, t *testing.T, req testcontainers.ContainerRequest, port nat.Port) (string, int) {
	t.Helper()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start %s", req.Image)
	t.Cleanup(func() {
		_ = c.Terminate(context.Background())
	})

	host, err := c.Host(ctx)
	require.NoError(t, err)
	mapped, err := c.MappedPort(ctx, port)
	require.NoError(t, err)

	return host, mapped.Int()
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestRoutesAgainstLiveBackends(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	redisHost, redisPort := startBackend(ctx, t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("6379/tcp").WithStartupTimeout(30*time.Second),
			wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second),
		),
	}, "6379/tcp")

	qdrantHost, qdrantPort := startBackend(ctx, t, testcontainers.ContainerRequest{
		Image:        "qdrant/qdrant:v1.16.1",
		ExposedPorts: []string{"6333/tcp", "6334/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("6334/tcp").WithStartupTimeout(60*time.Second),
			wait.ForHTTP("/readyz").WithPort("6333/tcp").WithStartupTimeout(60*time.Second),
		),
	}, "6334/tcp")

	var server *Server
	app := fxtest.New(t,
		fx.Supply(
			Config{Address: "127.0.0.1:0"},
			redis.Config{Host: redisHost, Port: redisPort},
			qdrant.Config{Endpoint: qdrantHost, Port: qdrantPort},
			metrics.Config{ServiceName: "router-integration-test", Disabled: true},
		),
		fx.Provide(func() logger.Logger { return logger.NewFromZap(zap.NewNop(), false) }),
		redis.FXModule,
		qdrant.FXModule,
		metrics.FXModule,
		FXModule,
		fx.Populate(&server),
	)
	app.RequireStart()
	defer app.RequireStop()

	base := "http://" + server.Addr()

	t.Run("health", func(t *testing.T) {
		var body HealthResponse
		assert.Equal(t, http.StatusOK, getJSON(t, base+"/health", &body))
		assert.Equal(t, HealthResponse{App: serviceRunning, Redis: serviceRunning, Qdrant: serviceRunning}, body)
	})

	t.Run("redis round trip shows up in the cache listing", func(t *testing.T) {
		var written RedisTestResponse
		require.Equal(t, http.StatusOK, getJSON(t, base+"/test/redis", &written))
		assert.Equal(t, RedisTestResponse{Status: "success", Message: "Redis", Counter: "42"}, written)

		var cache CacheDataResponse
		require.Equal(t, http.StatusOK, getJSON(t, base+"/cache/data", &cache))
		assert.Equal(t, "Redis", cache.CacheData["message"])
		assert.Equal(t, "42", cache.CacheData["counter"])
	})

	t.Run("qdrant demo collection is seeded once and searchable", func(t *testing.T) {
		var first, second QdrantTestResponse
		require.Equal(t, http.StatusOK, getJSON(t, base+"/test/qdrant", &first))
		assert.NotContains(t, first.Collections, DefaultCollection, "listing is taken before the collection is created")
		require.Equal(t, http.StatusOK, getJSON(t, base+"/test/qdrant", &second))
		assert.Contains(t, second.Collections, DefaultCollection)

		var listing VectorsResponse
		require.Equal(t, http.StatusOK, getJSON(t, base+"/vectors", &listing))
		var found bool
		for _, c := range listing.Collections {
			if c.Name == DefaultCollection {
				found = true
				assert.GreaterOrEqual(t, c.VectorsCount, uint64(3))
			}
		}
		assert.True(t, found, "collections: %v", listing.Collections)

		var search SearchResponse
		require.Equal(t, http.StatusOK, getJSON(t, base+"/search?query=hello", &search))
		assert.Equal(t, "hello", search.Query)
		require.NotEmpty(t, search.Results)
		assert.LessOrEqual(t, len(search.Results), DefaultSearchLimit)
		for i := 1; i < len(search.Results); i++ {
			assert.GreaterOrEqual(t, search.Results[i-1].Score, search.Results[i].Score)
		}
	})

	t.Run("bad search parameters are rejected before reaching qdrant", func(t *testing.T) {
		var body ErrorResponse
		assert.Equal(t, http.StatusBadRequest, getJSON(t, base+"/search?vector=NaN,0,0,0", &body))
		assert.Equal(t, KindValidation, body.Kind)
	})
}
