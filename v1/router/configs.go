package router

import (
	"time"

	"github.com/Aleph-Alpha/infra-showcase/v1/vectordb"
)

// Config controls the HTTP server and the demo data the routes operate on.
type Config struct {
	// Address the HTTP server binds to.
	// Default: "0.0.0.0:5000"
	Address string `yaml:"address" mapstructure:"address" validate:"required,hostname_port"`

	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`

	// HealthTimeout bounds each backend probe of /health.
	// Default: 2s
	HealthTimeout time.Duration `yaml:"health_timeout" mapstructure:"health_timeout"`

	// FanOutLimit caps concurrent collection lookups in /vectors.
	// Default: 10
	FanOutLimit int `yaml:"fan_out_limit" mapstructure:"fan_out_limit" validate:"omitempty,min=1"`

	Demo DemoConfig `yaml:"demo" mapstructure:"demo"`
}

// DemoConfig holds the fixed data the test and search routes use.
type DemoConfig struct {
	MessageKey   string `yaml:"message_key" mapstructure:"message_key"`
	MessageValue string `yaml:"message_value" mapstructure:"message_value"`
	CounterKey   string `yaml:"counter_key" mapstructure:"counter_key"`

	// CounterValue is what /test/redis stores under CounterKey. Nil means
	// DefaultCounterValue; an explicit 0 is kept.
	CounterValue *int `yaml:"counter_value" mapstructure:"counter_value"`

	// CachePattern is the KEYS pattern /cache/data lists.
	CachePattern string `yaml:"cache_pattern" mapstructure:"cache_pattern"`

	Collection string            `yaml:"collection" mapstructure:"collection"`
	VectorSize uint64            `yaml:"vector_size" mapstructure:"vector_size"`
	Distance   vectordb.Distance `yaml:"distance" mapstructure:"distance" validate:"omitempty,oneof=Cosine Euclid Dot Manhattan"`

	Points      []vectordb.Point `yaml:"points" mapstructure:"points"`
	QueryVector []float32        `yaml:"query_vector" mapstructure:"query_vector"`

	DefaultLimit int `yaml:"default_limit" mapstructure:"default_limit" validate:"omitempty,min=1"`
	MaxLimit     int `yaml:"max_limit" mapstructure:"max_limit" validate:"omitempty,min=1"`
}

const (
	DefaultAddress         = "0.0.0.0:5000"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultHealthTimeout   = 2 * time.Second
	DefaultFanOutLimit     = 10
	DefaultCounterValue    = 42
	DefaultCollection      = "test_vectors"
	DefaultVectorSize      = 4
	DefaultSearchLimit     = 3
	DefaultMaxSearchLimit  = 100
)

// DefaultPoints are the three points /test/qdrant upserts.
func DefaultPoints() []vectordb.Point {
	return []vectordb.Point{
		{ID: 1, Vector: []float32{0.1, 0.2, 0.3, 0.4}, Payload: map[string]any{"text": "Hello world", "type": "greeting"}},
		{ID: 2, Vector: []float32{0.5, 0.6, 0.7, 0.8}, Payload: map[string]any{"text": "Test vector", "type": "test"}},
		{ID: 3, Vector: []float32{0.9, 0.1, 0.2, 0.3}, Payload: map[string]any{"text": "Vector search", "type": "search"}},
	}
}

// DefaultQueryVector is the vector /search uses when none is given.
func DefaultQueryVector() []float32 {
	return []float32{0.2, 0.3, 0.4, 0.5}
}

func (c Config) withDefaults() Config {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.HealthTimeout <= 0 {
		c.HealthTimeout = DefaultHealthTimeout
	}
	if c.FanOutLimit <= 0 {
		c.FanOutLimit = DefaultFanOutLimit
	}
	c.Demo = c.Demo.withDefaults()
	return c
}

func (d DemoConfig) withDefaults() DemoConfig {
	if d.MessageKey == "" {
		d.MessageKey = "message"
	}
	if d.MessageValue == "" {
		d.MessageValue = "Redis"
	}
	if d.CounterKey == "" {
		d.CounterKey = "counter"
	}
	if d.CounterValue == nil {
		v := DefaultCounterValue
		d.CounterValue = &v
	}
	if d.CachePattern == "" {
		d.CachePattern = "*"
	}
	if d.Collection == "" {
		d.Collection = DefaultCollection
	}
	if d.VectorSize == 0 {
		d.VectorSize = DefaultVectorSize
	}
	if d.Distance == "" {
		d.Distance = vectordb.Cosine
	}
	if len(d.Points) == 0 {
		d.Points = DefaultPoints()
	}
	if len(d.QueryVector) == 0 {
		d.QueryVector = DefaultQueryVector()
	}
	if d.DefaultLimit <= 0 {
		d.DefaultLimit = DefaultSearchLimit
	}
	if d.MaxLimit <= 0 {
		d.MaxLimit = DefaultMaxSearchLimit
	}
	return d
}
