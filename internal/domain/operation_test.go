package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/doeshing/calcli/internal/domain"
)

func TestExecuteOperation_BasicOps(t *testing.T) {
	tests := []struct {
		op   string
		a, b float64
		want float64
	}{
		{"add", 2, 3, 5},
		{"subtract", 5, 2, 3},
		{"multiply", 3, 4, 12},
		{"divide", 9, 3, 3},
		{"power", 2, 5, 32},
		{"modulus", 10, 4, 2},
		{"int_divide", 10, 3, 3},
		{"percent", 25, 100, 25},
		{"abs_diff", 5, 11, 6},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			got, err := domain.ExecuteOperation(tt.op, tt.a, tt.b)
			if err != nil {
				t.Fatalf("ExecuteOperation(%s, %v, %v) error = %v", tt.op, tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("ExecuteOperation(%s, %v, %v) = %v, want %v", tt.op, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExecuteOperation_Failures(t *testing.T) {
	tests := []struct {
		name string
		op   string
		a, b float64
	}{
		{"divide by zero", "divide", 1, 0},
		{"modulus by zero", "modulus", 1, 0},
		{"int_divide by zero", "int_divide", 1, 0},
		{"percent denominator zero", "percent", 1, 0},
		{"zeroth root", "root", 8, 0},
		{"even root of negative", "root", -8, 2},
		{"non-integer root of negative", "root", -16, 2.5},
		{"unknown operation", "unknown-op", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ExecuteOperation(tt.op, tt.a, tt.b)
			if err == nil {
				t.Fatalf("ExecuteOperation(%s, %v, %v) expected error", tt.op, tt.a, tt.b)
			}
			var opErr *domain.OperationError
			if !errors.As(err, &opErr) {
				t.Errorf("error type = %T, want *OperationError", err)
			}
		})
	}
}

func TestExecuteOperation_OddRootOfNegative(t *testing.T) {
	got, err := domain.ExecuteOperation("root", -27, 3)
	if err != nil {
		t.Fatalf("ExecuteOperation(root, -27, 3) error = %v", err)
	}
	if math.Abs(got-(-3)) > 1e-9 {
		t.Errorf("ExecuteOperation(root, -27, 3) = %v, want -3", got)
	}
}

func TestExecuteOperation_FlooredModulus(t *testing.T) {
	// Result takes the sign of the divisor.
	got, err := domain.ExecuteOperation("modulus", -7, 3)
	if err != nil {
		t.Fatalf("ExecuteOperation(modulus, -7, 3) error = %v", err)
	}
	if got != 2 {
		t.Errorf("ExecuteOperation(modulus, -7, 3) = %v, want 2", got)
	}
}

func TestExecuteOperation_Pure(t *testing.T) {
	first, err := domain.ExecuteOperation("power", 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := domain.ExecuteOperation("power", 2, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("repeated call returned %v, want %v", got, first)
		}
	}
}

func TestExecuteOperation_NormalizesName(t *testing.T) {
	got, err := domain.ExecuteOperation("  ADD ", 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}
