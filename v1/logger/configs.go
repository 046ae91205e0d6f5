package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config defines the logger configuration.
type Config struct {
	// Level is the minimum level that gets written.
	// 1. production -> INFO
	// 2. development -> DEBUG
	// else -> INFO
	Level string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warning error"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`

	// EnableTracing makes the *WithContext methods add trace_id and span_id
	// taken from the active OpenTelemetry span.
	EnableTracing bool `yaml:"enable_tracing" mapstructure:"enable_tracing"`
}
