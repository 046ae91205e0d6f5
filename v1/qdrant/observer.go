package qdrant

import (
	"time"

	"github.com/Aleph-Alpha/infra-showcase/v1/observability"
)

const component = "qdrant"

// startOperation starts timing operation on resource and returns the func
// that reports it to the observer.
func (c *QdrantClient) startOperation(operation, resource string) func(err error, size int64) {
	start := time.Now()
	return func(err error, size int64) {
		if c == nil || c.observer == nil {
			return
		}
		c.observer.ObserveOperation(observability.OperationContext{
			Component: component,
			Operation: operation,
			Resource:  resource,
			Duration:  time.Since(start),
			Error:     err,
			Size:      size,
		})
	}
}
