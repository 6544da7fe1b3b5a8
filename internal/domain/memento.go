package domain

// Snapshot is an immutable copy of a History's record sequence at a point
// in time. Construction always copies, so a snapshot never aliases live
// history state.
type Snapshot struct {
	state []Calculation
}

// Items returns a copy of the captured records, oldest first.
func (s Snapshot) Items() []Calculation {
	out := make([]Calculation, len(s.state))
	copy(out, s.state)
	return out
}

// Len returns the number of captured records.
func (s Snapshot) Len() int { return len(s.state) }

// Caretaker manages undo/redo stacks of opaque snapshots. It never inspects
// History itself; the caller captures a snapshot before each mutation and
// applies returned snapshots back via History.Restore.
type Caretaker struct {
	undo []Snapshot
	redo []Snapshot
}

// Save pushes a pre-mutation snapshot onto the undo stack. The redo stack
// is cleared because the timeline has branched.
func (c *Caretaker) Save(snap Snapshot) {
	c.undo = append(c.undo, snap)
	c.redo = c.redo[:0]
}

// CanUndo reports whether an undo snapshot is available.
func (c *Caretaker) CanUndo() bool { return len(c.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (c *Caretaker) CanRedo() bool { return len(c.redo) > 0 }

// Undo pops the most recent undo snapshot and pushes current onto the redo
// stack. Fails with ErrNothingToUndo when the undo stack is empty.
func (c *Caretaker) Undo(current Snapshot) (Snapshot, error) {
	if len(c.undo) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}
	prev := c.undo[len(c.undo)-1]
	c.undo = c.undo[:len(c.undo)-1]
	c.redo = append(c.redo, current)
	return prev, nil
}

// Redo pops the most recent redo snapshot and pushes current back onto the
// undo stack. Fails with ErrNothingToRedo when the redo stack is empty.
func (c *Caretaker) Redo(current Snapshot) (Snapshot, error) {
	if len(c.redo) == 0 {
		return Snapshot{}, ErrNothingToRedo
	}
	next := c.redo[len(c.redo)-1]
	c.redo = c.redo[:len(c.redo)-1]
	c.undo = append(c.undo, current)
	return next, nil
}

// Clear empties both stacks.
func (c *Caretaker) Clear() {
	c.undo = nil
	c.redo = nil
}
