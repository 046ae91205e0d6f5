package tracer

// Config defines the configuration for the OpenTelemetry tracer.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`

	// AppEnv is the deployment environment (e.g. "development", "production").
	AppEnv string `yaml:"app_env" mapstructure:"app_env"`

	// EnableExport turns on the OTLP HTTP exporter. When false spans are still
	// created and propagated but never leave the process.
	EnableExport bool `yaml:"enable_export" mapstructure:"enable_export"`

	// Endpoint overrides the OTLP collector address (host:port). When empty the
	// exporter falls back to OTEL_EXPORTER_OTLP_ENDPOINT or localhost:4318.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
}
