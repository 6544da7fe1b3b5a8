package domain

// History keeps a bounded, chronologically ordered list of calculations.
// When an append would exceed the capacity the oldest record is evicted.
type History struct {
	items []Calculation
	max   int
}

// NewHistory constructs a history with the provided capacity.
func NewHistory(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxHistorySize
	}
	return &History{max: maxSize}
}

// Add records a calculation, evicting the oldest entry when full.
func (h *History) Add(calc Calculation) {
	h.items = append(h.items, calc)
	if len(h.items) > h.max {
		h.items = h.items[1:]
	}
}

// Items returns a copy of the stored records, oldest first.
func (h *History) Items() []Calculation {
	out := make([]Calculation, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of stored records.
func (h *History) Len() int { return len(h.items) }

// Clear empties the history.
func (h *History) Clear() { h.items = nil }

// ToSnapshot captures the full record sequence as an independent copy.
func (h *History) ToSnapshot() Snapshot {
	state := make([]Calculation, len(h.items))
	copy(state, h.items)
	return Snapshot{state: state}
}

// Restore replaces the entire sequence with the snapshot contents. The
// snapshot is trusted to respect capacity as it did when it was taken; if
// the capacity was lowered in between, the restored state may exceed it and
// is kept as-is.
func (h *History) Restore(snap Snapshot) {
	h.items = snap.Items()
}

// ReplaceAll swaps in a freshly loaded record sequence, preserving its
// order. Like Restore, it does not re-apply capacity eviction.
func (h *History) ReplaceAll(records []Calculation) {
	items := make([]Calculation, len(records))
	copy(items, records)
	h.items = items
}
