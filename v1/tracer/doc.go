// Package tracer wraps the OpenTelemetry SDK with a small API for starting
// spans, recording errors, attaching attributes and moving W3C trace context
// in and out of plain string maps.
//
// The router starts one span per HTTP request and the logger picks up its
// trace and span IDs when tracing is enabled on the logger.
//
// Configuration:
//
//	SHOWCASE_TRACER_SERVICE_NAME=infra-showcase
//	SHOWCASE_TRACER_APP_ENV=development
//	SHOWCASE_TRACER_ENABLE_EXPORT=false
//	SHOWCASE_TRACER_ENDPOINT=otel-collector:4318
package tracer
