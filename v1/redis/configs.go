package redis

import (
	"net"
	"strconv"
	"time"
)

// Config holds the connection settings for a standalone Redis server.
type Config struct {
	// Host is the Redis server hostname or IP address
	// Default: "localhost"
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the Redis server port
	// Default: 6379
	Port int `yaml:"port" mapstructure:"port" validate:"omitempty,min=1,max=65535"`

	// Username is the Redis username for ACL authentication (Redis 6.0+)
	Username string `yaml:"username" mapstructure:"username"`

	// Password is the Redis password for authentication
	Password string `yaml:"password" mapstructure:"password"`

	// DB is the Redis database number to use
	// Default: 0
	DB int `yaml:"db" mapstructure:"db" validate:"min=0"`

	// PoolSize is the maximum number of socket connections
	// Default: 10 per CPU
	PoolSize int `yaml:"pool_size" mapstructure:"pool_size"`

	// MinIdleConns is the minimum number of idle connections to maintain
	MinIdleConns int `yaml:"min_idle_conns" mapstructure:"min_idle_conns"`

	// MaxConnAge is the maximum duration a connection can be reused
	MaxConnAge time.Duration `yaml:"max_conn_age" mapstructure:"max_conn_age"`

	// PoolTimeout is the amount of time to wait for a connection from the pool
	// Default: ReadTimeout + 1 second
	PoolTimeout time.Duration `yaml:"pool_timeout" mapstructure:"pool_timeout"`

	// IdleTimeout is the amount of time after which idle connections are closed
	// Default: 5 minutes
	IdleTimeout time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`

	// MaxRetries is the maximum number of retries before giving up.
	// Set to -1 to disable retries.
	// Default: 3
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	// MinRetryBackoff is the minimum backoff between each retry
	// Default: 8 milliseconds
	MinRetryBackoff time.Duration `yaml:"min_retry_backoff" mapstructure:"min_retry_backoff"`

	// MaxRetryBackoff is the maximum backoff between each retry
	// Default: 512 milliseconds
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff" mapstructure:"max_retry_backoff"`

	// DialTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	DialTimeout time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`

	// ReadTimeout is the timeout for socket reads
	// Default: 3 seconds
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout is the timeout for socket writes
	// Default: ReadTimeout
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`

	// TLS contains TLS/SSL configuration
	TLS TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// TLSConfig contains TLS/SSL configuration parameters.
type TLSConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// CACertPath is the file path to the CA certificate for verifying the server
	CACertPath string `yaml:"ca_cert_path" mapstructure:"ca_cert_path"`

	ClientCertPath string `yaml:"client_cert_path" mapstructure:"client_cert_path"`
	ClientKeyPath  string `yaml:"client_key_path" mapstructure:"client_key_path"`

	// InsecureSkipVerify skips server certificate verification. Testing only.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`

	// ServerName is used to verify the hostname on the returned certificates.
	// If empty, Host is used.
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

// Logger is the subset of logger.Logger the client needs.
type Logger interface {
	Error(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Default values for configuration
const (
	DefaultHost            = "localhost"
	DefaultPort            = 6379
	DefaultIdleTimeout     = 5 * time.Minute
	DefaultMaxRetries      = 3
	DefaultMinRetryBackoff = 8 * time.Millisecond
	DefaultMaxRetryBackoff = 512 * time.Millisecond
	DefaultDialTimeout     = 5 * time.Second
	DefaultReadTimeout     = 3 * time.Second
)

// withDefaults fills every zero field that has a documented default.
func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.MinRetryBackoff == 0 {
		c.MinRetryBackoff = DefaultMinRetryBackoff
	}
	if c.MaxRetryBackoff == 0 {
		c.MaxRetryBackoff = DefaultMaxRetryBackoff
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	return c
}

// Addr returns the host:port dial address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
