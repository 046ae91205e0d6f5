// Package observability defines the hook through which backend clients report
// the operations they perform, without depending on a metrics implementation.
package observability

import "time"

// OperationContext describes one completed backend operation.
type OperationContext struct {
	// Component is the backend that performed the operation, e.g. "redis" or "qdrant".
	Component string

	// Operation is the lower-case operation name, e.g. "get" or "upsert".
	Operation string

	// Resource is the key or collection the operation targeted.
	Resource string

	// SubResource carries extra addressing such as a field or point id.
	SubResource string

	Duration time.Duration
	Error    error

	// Size is an operation specific magnitude (bytes read, points written, hits returned).
	Size int64

	Metadata map[string]interface{}
}

// Observer receives OperationContext events. Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// Outcome returns "success" or "error" for the operation.
func (o OperationContext) Outcome() string {
	if o.Error != nil {
		return "error"
	}
	return "success"
}
