// Package domain defines the core entities and value objects of the
// calculator: operations, calculation records, the bounded history and its
// undo/redo machinery, and configuration.
package domain

import "time"

// Calculation is an immutable record of a single computed operation.
// Result is expected to already be rounded to the configured precision by
// the caller.
type Calculation struct {
	Operation string
	A         float64
	B         float64
	Result    float64
	Timestamp string
}

// NewCalculation builds a record stamped with the current UTC time in
// ISO-8601 format.
func NewCalculation(operation string, a, b, result float64) Calculation {
	return Calculation{
		Operation: operation,
		A:         a,
		B:         b,
		Result:    result,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
