// Package logger provides structured logging on top of Uber's zap.
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: the contract other packages depend on
//   - LoggerClient struct: the zap-backed implementation
//   - FXModule: provides both *LoggerClient and Logger
//
// Every method takes a message, an optional error and optional field maps:
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "infra-showcase"})
//	log.Info("Redis client started", nil, map[string]interface{}{"address": "localhost:6379"})
//	log.Error("Qdrant upsert failed", err, nil)
//
// When EnableTracing is set, the *WithContext variants add the trace_id and
// span_id of the OpenTelemetry span found in the context, so log lines can be
// joined with request traces.
//
// # Configuration
//
//	SHOWCASE_LOGGER_LEVEL=debug            # debug, info, warning, error
//	SHOWCASE_LOGGER_ENABLE_TRACING=true
package logger
