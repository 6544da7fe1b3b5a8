package domain

import "errors"

// OperationError reports an unknown operation name or an operation that is
// mathematically undefined for the given operands.
type OperationError struct {
	Msg string
}

func (e *OperationError) Error() string { return e.Msg }

// ValidationError reports malformed or out-of-range user input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// HistoryError reports persistence or undo/redo failures.
type HistoryError struct {
	Msg string
	Err error
}

func (e *HistoryError) Error() string {
	switch {
	case e.Msg == "":
		return e.Err.Error()
	case e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *HistoryError) Unwrap() error { return e.Err }

// Caretaker signals. The facade converts these to HistoryError before they
// reach a caller.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Benign persistence states, carried inside a HistoryError so callers can
// tell them apart from real failures with errors.Is.
var (
	ErrHistoryNotFound = errors.New("history file not found")
	ErrHistoryEmpty    = errors.New("history file is empty")
)
