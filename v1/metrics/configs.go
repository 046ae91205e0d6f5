package metrics

// Default port for metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"   → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	//
	// Default: ":9090"
	Address string `yaml:"address" mapstructure:"address"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// Default: true
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" mapstructure:"enable_default_collectors"`

	// Namespace sets a global prefix for all metrics registered by this service.
	//
	// Example:
	//   Namespace: "showcase"
	//   → Metric name becomes "showcase_requests_total"
	Namespace string `yaml:"namespace" mapstructure:"namespace"`

	// ServiceName is used as a constant "service" label on every metric.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`

	// Disabled keeps the registry and collectors but never starts the HTTP server.
	Disabled bool `yaml:"disabled" mapstructure:"disabled"`
}
