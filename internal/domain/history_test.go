package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/calcli/internal/domain"
)

func calcWithA(a float64) domain.Calculation {
	return domain.Calculation{Operation: "add", A: a, B: 1, Result: a + 1, Timestamp: "2026-01-02T03:04:05Z"}
}

func TestHistory_AddEvictsOldest(t *testing.T) {
	h := domain.NewHistory(3)
	for _, a := range []float64{1, 2, 3, 4} {
		h.Add(calcWithA(a))
	}

	items := h.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	got := []float64{items[0].A, items[1].A, items[2].A}
	if diff := cmp.Diff([]float64{2, 3, 4}, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_ItemsReturnsCopy(t *testing.T) {
	h := domain.NewHistory(10)
	h.Add(calcWithA(1))

	items := h.Items()
	items[0].A = 99

	if h.Items()[0].A != 1 {
		t.Error("mutating the returned slice changed history state")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := domain.NewHistory(10)
	h.Add(calcWithA(1))
	h.Add(calcWithA(2))

	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", h.Len())
	}
}

func TestHistory_SnapshotRoundTrip(t *testing.T) {
	h := domain.NewHistory(10)
	h.Add(calcWithA(1))
	h.Add(calcWithA(2))

	snap := h.ToSnapshot()
	h.Add(calcWithA(3))
	h.Restore(snap)

	if diff := cmp.Diff([]domain.Calculation{calcWithA(1), calcWithA(2)}, h.Items()); diff != "" {
		t.Errorf("restored state mismatch (-want +got):\n%s", diff)
	}
}

func TestHistory_SnapshotIndependentOfLaterMutation(t *testing.T) {
	h := domain.NewHistory(10)
	h.Add(calcWithA(1))

	snap := h.ToSnapshot()
	h.Clear()

	if snap.Len() != 1 {
		t.Errorf("snapshot Len = %d after history mutation, want 1", snap.Len())
	}
}

func TestHistory_RestoreDoesNotReapplyCapacity(t *testing.T) {
	// A snapshot taken under a larger capacity is restored as-is even when
	// the receiving history is smaller.
	big := domain.NewHistory(5)
	for _, a := range []float64{1, 2, 3, 4, 5} {
		big.Add(calcWithA(a))
	}
	snap := big.ToSnapshot()

	small := domain.NewHistory(2)
	small.Restore(snap)

	if small.Len() != 5 {
		t.Errorf("restored Len = %d, want 5 (no truncation)", small.Len())
	}
}

func TestHistory_ReplaceAllPreservesOrder(t *testing.T) {
	h := domain.NewHistory(10)
	h.Add(calcWithA(42))

	records := []domain.Calculation{calcWithA(7), calcWithA(8)}
	h.ReplaceAll(records)

	if diff := cmp.Diff(records, h.Items()); diff != "" {
		t.Errorf("replaced state mismatch (-want +got):\n%s", diff)
	}
}
