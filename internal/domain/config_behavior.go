package domain

import (
	"fmt"
	"math"
	"path/filepath"
)

// HistoryFile returns the path of the persisted history for the configured
// backend.
func (c Config) HistoryFile() string {
	if c.History.Backend == BackendSQLite {
		return filepath.Join(c.History.Dir, HistorySQLiteFileName)
	}
	return filepath.Join(c.History.Dir, HistoryCSVFileName)
}

// LogFile returns the path of the application log.
func (c Config) LogFile() string {
	return filepath.Join(c.Logging.Dir, LogFileName)
}

// Validate ensures the configuration is internally consistent.
func (c Config) Validate() error {
	if c.History.MaxSize <= 0 {
		return fmt.Errorf("history.max_size must be > 0, got %d", c.History.MaxSize)
	}
	switch c.History.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("history.backend must be csv|sqlite, got %s", c.History.Backend)
	}
	if err := ValidatePrecision(c.Input.Precision); err != nil {
		return err
	}
	if c.Input.MaxInputValue <= 0 {
		return fmt.Errorf("input.max_input_value must be > 0")
	}
	return nil
}

// ValidatePrecision checks a rounding precision against the allowed range.
func ValidatePrecision(n int) error {
	if n < MinPrecision || n > MaxPrecision {
		return &ValidationError{Msg: fmt.Sprintf("precision must be between %d and %d, got %d", MinPrecision, MaxPrecision, n)}
	}
	return nil
}

// ValidateOperand checks an operand against the configured magnitude bound.
func (c Config) ValidateOperand(v float64) error {
	if c.Input.MaxInputValue > 0 && math.Abs(v) > c.Input.MaxInputValue {
		return &ValidationError{Msg: "operand exceeds maximum allowed value"}
	}
	return nil
}
