// Package interpreter adapts the external natural-language understanding
// service into a structured Interpretation. The service is opaque: it
// receives the raw query and a temporal reference point and returns filter
// fields, or the call fails with a typed, recoverable error.
package interpreter

import (
	"context"
	"time"

	"txn-search/internal/models"
)

// Interpreter turns a free-text query into a structured Interpretation.
// Implementations must honor the context deadline and return a typed
// *Error for every failure mode.
type Interpreter interface {
	Interpret(ctx context.Context, query string, referenceDate time.Time) (*models.Interpretation, error)
}
