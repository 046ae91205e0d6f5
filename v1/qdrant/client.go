package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/infra-showcase/v1/observability"
	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// QdrantClient wraps the official Qdrant Go client and implements
// vectordb.Service on top of it.
type QdrantClient struct {
	api *qdrant.Client
	cfg Config

	logger   Logger
	observer observability.Observer
}

var _ vectordb.Service = (*QdrantClient)(nil)

// Logger is the subset of logger.Logger the client needs.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// NewClient constructs a QdrantClient. The underlying gRPC connection is
// established lazily, so a server that is down does not make this fail;
// use HealthCheck to probe it.
//
// Example:
//
//	client, err := qdrant.NewClient(*qdrant.DefaultConfig())
func NewClient(cfg Config) (*QdrantClient, error) {
	cfg = cfg.withDefaults()

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   cfg.Port,
		APIKey:                 cfg.ApiKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize qdrant client: %w", err)
	}

	return &QdrantClient{api: api, cfg: cfg}, nil
}

// HealthCheck calls the server health endpoint over gRPC.
func (c *QdrantClient) HealthCheck(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	done := c.startOperation("health_check", "")
	_, err := c.api.HealthCheck(ctx)
	done(err, 0)
	if err != nil {
		return fmt.Errorf("qdrant health check failed: %w", err)
	}
	return nil
}

// Client returns the underlying Qdrant SDK client.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// Addr returns the gRPC address the client dials.
func (c *QdrantClient) Addr() string {
	return c.cfg.Addr()
}

// Close closes the gRPC connection.
func (c *QdrantClient) Close() error {
	if c.api == nil {
		return nil
	}
	if c.logger != nil {
		c.logger.Info("closing qdrant client", nil, map[string]interface{}{"addr": c.Addr()})
	}
	return c.api.Close()
}

// WithObserver sets the observer for this client and returns the client for method chaining.
func (c *QdrantClient) WithObserver(observer observability.Observer) *QdrantClient {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for method chaining.
func (c *QdrantClient) WithLogger(logger Logger) *QdrantClient {
	c.logger = logger
	return c
}

func (c *QdrantClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}
