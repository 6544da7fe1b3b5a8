package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/calcli/internal/domain"
)

func snapshotOf(values ...float64) domain.Snapshot {
	h := domain.NewHistory(100)
	for _, v := range values {
		h.Add(calcWithA(v))
	}
	return h.ToSnapshot()
}

func TestCaretaker_UndoRedoRoundTrip(t *testing.T) {
	c := &domain.Caretaker{}
	s0 := snapshotOf(1)
	s1 := snapshotOf(1, 2)

	c.Save(s0)

	got, err := c.Undo(s1)
	if err != nil {
		t.Fatalf("Undo error = %v", err)
	}
	if diff := cmp.Diff(s0.Items(), got.Items()); diff != "" {
		t.Errorf("Undo snapshot mismatch (-want +got):\n%s", diff)
	}

	got, err = c.Redo(s0)
	if err != nil {
		t.Fatalf("Redo error = %v", err)
	}
	if diff := cmp.Diff(s1.Items(), got.Items()); diff != "" {
		t.Errorf("Redo snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestCaretaker_UndoEmptyFails(t *testing.T) {
	c := &domain.Caretaker{}
	if _, err := c.Undo(snapshotOf()); !errors.Is(err, domain.ErrNothingToUndo) {
		t.Errorf("Undo on empty stack error = %v, want ErrNothingToUndo", err)
	}
}

func TestCaretaker_RedoEmptyFails(t *testing.T) {
	c := &domain.Caretaker{}
	if _, err := c.Redo(snapshotOf()); !errors.Is(err, domain.ErrNothingToRedo) {
		t.Errorf("Redo on empty stack error = %v, want ErrNothingToRedo", err)
	}
}

func TestCaretaker_SaveClearsRedo(t *testing.T) {
	c := &domain.Caretaker{}
	c.Save(snapshotOf(1))
	if _, err := c.Undo(snapshotOf(1, 2)); err != nil {
		t.Fatalf("Undo error = %v", err)
	}
	if !c.CanRedo() {
		t.Fatal("expected redo to be available after undo")
	}

	// A new change branches the timeline; redo history becomes invalid.
	c.Save(snapshotOf(1, 3))

	if c.CanRedo() {
		t.Error("redo stack not cleared by Save")
	}
	if _, err := c.Redo(snapshotOf()); !errors.Is(err, domain.ErrNothingToRedo) {
		t.Errorf("Redo after branch error = %v, want ErrNothingToRedo", err)
	}
}

func TestCaretaker_Clear(t *testing.T) {
	c := &domain.Caretaker{}
	c.Save(snapshotOf(1))
	if _, err := c.Undo(snapshotOf(1, 2)); err != nil {
		t.Fatalf("Undo error = %v", err)
	}

	c.Clear()

	if c.CanUndo() || c.CanRedo() {
		t.Error("Clear left snapshots behind")
	}
}

func TestCaretaker_MultiLevelUndo(t *testing.T) {
	c := &domain.Caretaker{}
	s0 := snapshotOf()
	s1 := snapshotOf(1)
	s2 := snapshotOf(1, 2)

	c.Save(s0)
	c.Save(s1)

	got, err := c.Undo(s2)
	if err != nil {
		t.Fatalf("Undo error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("first Undo returned %d records, want 1", got.Len())
	}

	got, err = c.Undo(s1)
	if err != nil {
		t.Fatalf("second Undo error = %v", err)
	}
	if got.Len() != 0 {
		t.Fatalf("second Undo returned %d records, want 0", got.Len())
	}
}
