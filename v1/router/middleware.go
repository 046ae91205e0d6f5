package router

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/infra-showcase/v1/logger"
	"github.com/Aleph-Alpha/infra-showcase/v1/metrics"
	"github.com/Aleph-Alpha/infra-showcase/v1/tracer"
)

const unmatchedRoute = "unmatched"

// observe wraps every request in a span, renders route errors through the
// app's error handler so the final status is known, then records metrics and
// writes the access log. tr and m may be nil.
func observe(log logger.Logger, tr *tracer.Tracer, m metrics.MetricsCollector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		var span trace.Span
		if tr != nil {
			ctx := tr.SetCarrierOnContext(c.UserContext(), requestCarrier(c))
			ctx, span = tr.StartSpan(ctx, c.Method()+" "+c.Path())
			defer span.End()
			c.SetUserContext(ctx)
		}

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().Config().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		code := c.Response().StatusCode()
		route := routeLabel(c)
		fields := map[string]interface{}{
			"method":      c.Method(),
			"path":        c.Path(),
			"route":       route,
			"status":      code,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetRespHeader(fiber.HeaderXRequestID),
		}

		if span != nil {
			tr.SetAttributes(span, map[string]interface{}{
				"http.method":      c.Method(),
				"http.route":       route,
				"http.status_code": code,
			})
			if chainErr != nil {
				tr.RecordErrorOnSpan(span, chainErr)
			}
		}

		if m != nil {
			m.IncrementRequests(fmt.Sprintf("%dxx", code/100))
			m.RecordRequestDuration(start, route)
		}

		ctx := c.UserContext()
		switch {
		case code >= fiber.StatusInternalServerError:
			log.ErrorWithContext(ctx, "request failed", chainErr, fields)
		case chainErr != nil:
			log.WarnWithContext(ctx, "request rejected", chainErr, fields)
		default:
			log.InfoWithContext(ctx, "request served", nil, fields)
		}
		return nil
	}
}

// routeLabel returns the registered route pattern, keeping metric label
// cardinality bounded for unknown paths.
func routeLabel(c *fiber.Ctx) string {
	r := c.Route()
	if r == nil || r.Method == "USE" {
		return unmatchedRoute
	}
	return r.Path
}

func requestCarrier(c *fiber.Ctx) map[string]string {
	carrier := make(map[string]string, 3)
	for _, h := range []string{"traceparent", "tracestate", "baggage"} {
		if v := c.Get(h); v != "" {
			carrier[h] = v
		}
	}
	return carrier
}
