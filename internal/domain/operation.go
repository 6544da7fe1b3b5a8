package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// BinaryOperation maps two operands to a result or an OperationError.
type BinaryOperation func(a, b float64) (float64, error)

var operations = map[string]BinaryOperation{
	"add":      func(a, b float64) (float64, error) { return a + b, nil },
	"subtract": func(a, b float64) (float64, error) { return a - b, nil },
	"multiply": func(a, b float64) (float64, error) { return a * b, nil },
	"divide": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &OperationError{Msg: "division by zero"}
		}
		return a / b, nil
	},
	"power": func(a, b float64) (float64, error) { return math.Pow(a, b), nil },
	"root":  root,
	"modulus": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &OperationError{Msg: "modulus by zero"}
		}
		// Floored modulus: the result takes the sign of the divisor.
		return a - b*math.Floor(a/b), nil
	},
	"int_divide": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &OperationError{Msg: "integer division by zero"}
		}
		return math.Floor(a / b), nil
	},
	"percent": func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, &OperationError{Msg: "percentage with denominator zero"}
		}
		return (a / b) * 100.0, nil
	},
	"abs_diff": func(a, b float64) (float64, error) { return math.Abs(a - b), nil },
}

func root(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &OperationError{Msg: "zeroth root undefined"}
	}
	if a < 0 {
		// Negative base is only defined for odd integer indices.
		if b != math.Trunc(b) {
			return 0, &OperationError{Msg: "root of negative base requires an integer index"}
		}
		n := int64(b)
		if n%2 == 0 {
			return 0, &OperationError{Msg: "even root of negative number is not real"}
		}
		return -math.Pow(-a, 1.0/float64(n)), nil
	}
	return math.Pow(a, 1.0/b), nil
}

// NormalizeOperation canonicalizes an operation name.
func NormalizeOperation(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ExecuteOperation resolves name against the operation set and applies it.
func ExecuteOperation(name string, a, b float64) (float64, error) {
	op, ok := operations[NormalizeOperation(name)]
	if !ok {
		return 0, &OperationError{Msg: fmt.Sprintf("unknown operation: %s", name)}
	}
	return op(a, b)
}

// IsOperation reports whether name resolves to a known operation.
func IsOperation(name string) bool {
	_, ok := operations[NormalizeOperation(name)]
	return ok
}

// OperationNames returns the canonical operation names in alphabetical order.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
