package qdrant

import (
	"net"
	"strconv"
	"time"
)

// Config holds connection and behavior settings for the Qdrant client.
//
// Example (builder style):
//
//	cfg := qdrant.FromEndpoint("qdrant.internal").
//	    WithApiKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" mapstructure:"port" validate:"omitempty,min=1,max=65535"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" mapstructure:"api_key"`

	// UseTLS dials the gRPC endpoint over TLS.
	UseTLS bool `yaml:"use_tls" mapstructure:"use_tls"`

	// Maximum duration of a single call. Zero leaves the caller's context alone.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// BatchSize caps the number of points sent in one upsert request.
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size" validate:"omitempty,min=1"`

	// Whether to compare client and server versions on connect. The check
	// needs a reachable server, so it is off by default.
	CheckCompatibility bool `yaml:"check_compatibility" mapstructure:"check_compatibility"`
}

const (
	DefaultEndpoint  = "localhost"
	DefaultPort      = 6334
	DefaultTimeout   = 5 * time.Second
	DefaultBatchSize = 200
)

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Endpoint:  DefaultEndpoint,
		Port:      DefaultPort,
		Timeout:   DefaultTimeout,
		BatchSize: DefaultBatchSize,
	}
}

// FromEndpoint returns a default config pre-filled with a specific endpoint.
func FromEndpoint(host string) *Config {
	cfg := DefaultConfig()
	cfg.Endpoint = host
	return cfg
}

func (c *Config) WithApiKey(key string) *Config {
	c.ApiKey = key
	return c
}

func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

func (c *Config) WithTLS(enabled bool) *Config {
	c.UseTLS = enabled
	return c
}

func (c *Config) WithCompatibilityCheck(enabled bool) *Config {
	c.CheckCompatibility = enabled
	return c
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}

// Addr returns host:port of the gRPC endpoint.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Endpoint, strconv.Itoa(c.Port))
}
