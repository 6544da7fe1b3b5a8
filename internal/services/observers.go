package services

import (
	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/ports"
)

// Observer reacts to a newly recorded calculation. Errors propagate to the
// Calculate caller.
type Observer interface {
	Update(calc domain.Calculation, history *domain.History) error
}

// LoggingObserver writes each calculation to the application log.
type LoggingObserver struct {
	Logger ports.Logger
}

func (o *LoggingObserver) Update(calc domain.Calculation, history *domain.History) error {
	o.Logger.Info("calculation recorded", map[string]interface{}{
		"operation": calc.Operation,
		"a":         calc.A,
		"b":         calc.B,
		"result":    calc.Result,
		"timestamp": calc.Timestamp,
		"size":      history.Len(),
	})
	return nil
}

// AutoSaveObserver persists the history after every successful calculation
// while enabled. The toggle is runtime-mutable via the autosave command.
type AutoSaveObserver struct {
	store   ports.HistoryStore
	enabled bool
}

// NewAutoSaveObserver builds the observer with its initial toggle state
// taken from configuration.
func NewAutoSaveObserver(store ports.HistoryStore, enabled bool) *AutoSaveObserver {
	return &AutoSaveObserver{store: store, enabled: enabled}
}

func (o *AutoSaveObserver) Update(calc domain.Calculation, history *domain.History) error {
	if !o.enabled {
		return nil
	}
	_, err := o.store.Save(history.Items())
	return err
}

// SetEnabled toggles auto-save at runtime.
func (o *AutoSaveObserver) SetEnabled(v bool) { o.enabled = v }

// Enabled reports the current toggle state.
func (o *AutoSaveObserver) Enabled() bool { return o.enabled }
