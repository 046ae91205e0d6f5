// Package metrics provides Prometheus-based monitoring for the service.
//
// A Metrics value owns an isolated registry whose metrics all carry a
// constant service label, and an HTTP server exposing it on /metrics.
//
// Built-in metrics:
//   - requests_total{status}: HTTP requests by status class ("2xx", "5xx", ...)
//   - request_duration_seconds{endpoint}: HTTP latency per route
//   - backend_operation_duration_seconds{component,operation,outcome}: Redis and Qdrant calls
//   - backend_operation_errors_total{component,operation}
//
// *Metrics implements observability.Observer, so it can be handed to the
// redis and qdrant clients with WithObserver.
//
// # Configuration
//
//	SHOWCASE_METRICS_ADDRESS=:9090
//	SHOWCASE_METRICS_ENABLE_DEFAULT_COLLECTORS=true
//	SHOWCASE_METRICS_NAMESPACE=showcase
//	SHOWCASE_METRICS_SERVICE_NAME=infra-showcase
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
