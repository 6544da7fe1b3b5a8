// Package ports defines the interfaces between the application core and the
// infrastructure adapters. The core depends on these abstractions only;
// concrete storage, configuration, and logging live in the infrastructure
// layer.
package ports

import (
	"context"

	"github.com/doeshing/calcli/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.calcli/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// HistoryStore durably round-trips a history's record sequence.
// Save must be atomic with respect to readers of the destination file:
// a crash mid-write never leaves a truncated or corrupt file behind.
type HistoryStore interface {
	// Save writes the full record sequence, replacing any previous
	// contents, and returns the destination path.
	Save(records []domain.Calculation) (string, error)
	// Load reads the full record sequence in stored order.
	Load() ([]domain.Calculation, error)
	// Path returns the backing file path.
	Path() string
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
