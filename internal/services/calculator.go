// Package services composes the domain core into the calculator facade
// consumed by the CLI, plus the doctor diagnostics service.
package services

import (
	"errors"
	"math"

	"github.com/doeshing/calcli/internal/domain"
	"github.com/doeshing/calcli/internal/ports"
)

// Calculator exposes calculate/undo/redo/save/load over the bounded history
// and its memento caretaker.
type Calculator struct {
	cfg       domain.Config
	precision int
	history   *domain.History
	caretaker *domain.Caretaker
	store     ports.HistoryStore
	logger    ports.Logger
	autoSave  *AutoSaveObserver
	observers []Observer
}

// NewCalculator wires the facade from configuration and adapters.
func NewCalculator(cfg domain.Config, store ports.HistoryStore, log ports.Logger) *Calculator {
	autoSave := NewAutoSaveObserver(store, cfg.History.AutoSave)
	return &Calculator{
		cfg:       cfg,
		precision: cfg.Input.Precision,
		history:   domain.NewHistory(cfg.History.MaxSize),
		caretaker: &domain.Caretaker{},
		store:     store,
		logger:    log,
		autoSave:  autoSave,
		observers: []Observer{&LoggingObserver{Logger: log}, autoSave},
	}
}

// Calculate executes the named operation, rounds the result to the current
// precision, records it, and notifies observers. A pre-mutation snapshot is
// saved for undo before anything else happens.
func (c *Calculator) Calculate(opName string, a, b float64) (float64, error) {
	c.caretaker.Save(c.history.ToSnapshot())

	name := domain.NormalizeOperation(opName)
	result, err := domain.ExecuteOperation(name, a, b)
	if err != nil {
		return 0, err
	}
	result = roundTo(result, c.precision)

	calc := domain.NewCalculation(name, a, b, result)
	c.history.Add(calc)
	if err := c.notify(calc); err != nil {
		return 0, err
	}
	return result, nil
}

func (c *Calculator) notify(calc domain.Calculation) error {
	for _, ob := range c.observers {
		if err := ob.Update(calc, c.history); err != nil {
			return err
		}
	}
	return nil
}

// HistoryItems returns the recorded calculations, oldest first.
func (c *Calculator) HistoryItems() []domain.Calculation {
	return c.history.Items()
}

// Clear wipes the history. The pre-clear snapshot is saved, so a clear is
// undoable.
func (c *Calculator) Clear() {
	c.caretaker.Save(c.history.ToSnapshot())
	c.history.Clear()
}

// Undo restores the most recent pre-mutation snapshot.
func (c *Calculator) Undo() error {
	snap, err := c.caretaker.Undo(c.history.ToSnapshot())
	if err != nil {
		return historyError(err)
	}
	c.history.Restore(snap)
	return nil
}

// Redo reapplies the most recently undone state.
func (c *Calculator) Redo() error {
	snap, err := c.caretaker.Redo(c.history.ToSnapshot())
	if err != nil {
		return historyError(err)
	}
	c.history.Restore(snap)
	return nil
}

// Save persists the history and returns the destination path.
func (c *Calculator) Save() (string, error) {
	return c.store.Save(c.history.Items())
}

// Load replaces the in-memory history with the persisted records and
// returns the row count. The pre-load snapshot is saved, so a load is
// undoable.
func (c *Calculator) Load() (int, error) {
	c.caretaker.Save(c.history.ToSnapshot())
	records, err := c.store.Load()
	if err != nil {
		return 0, err
	}
	c.history.ReplaceAll(records)
	return len(records), nil
}

// Precision returns the current rounding precision.
func (c *Calculator) Precision() int { return c.precision }

// SetPrecision changes the rounding precision for subsequent calculations.
func (c *Calculator) SetPrecision(n int) error {
	if err := domain.ValidatePrecision(n); err != nil {
		return err
	}
	c.precision = n
	return nil
}

// AutoSave exposes the runtime auto-save toggle.
func (c *Calculator) AutoSave() *AutoSaveObserver { return c.autoSave }

// ValidateOperands checks both operands against the configured magnitude
// bound.
func (c *Calculator) ValidateOperands(a, b float64) error {
	for _, v := range []float64{a, b} {
		if err := c.cfg.ValidateOperand(v); err != nil {
			return err
		}
	}
	return nil
}

func historyError(err error) error {
	if errors.Is(err, domain.ErrNothingToUndo) || errors.Is(err, domain.ErrNothingToRedo) {
		return &domain.HistoryError{Msg: err.Error()}
	}
	return err
}

func roundTo(v float64, precision int) float64 {
	shift := math.Pow(10, float64(precision))
	return math.Round(v*shift) / shift
}
