package drill

import (
	"testing"

	"github.com/google/uuid"
)

func TestHistoryCap(t *testing.T) {
	h := NewHistory()

	ids := make([]uuid.UUID, 6)
	for i := range ids {
		ids[i] = uuid.New()
		h.Push(ids[i])
	}

	if h.Len() != HistoryCap {
		t.Fatalf("len = %d, want %d", h.Len(), HistoryCap)
	}

	// The five most recent IDs survive, in order; the oldest is gone.
	got := h.IDs()
	for i := 0; i < HistoryCap; i++ {
		if got[i] != ids[i+1] {
			t.Errorf("entry %d = %v, want %v", i, got[i], ids[i+1])
		}
	}
}

func TestHistoryQueries(t *testing.T) {
	h := NewHistory()
	a, b := uuid.New(), uuid.New()

	if h.IsLast(a) || h.IsLastTwo(a) {
		t.Error("empty history should match nothing")
	}

	h.Push(a)
	h.Push(b)
	h.Push(a)

	if h.Count(a) != 2 || h.Count(b) != 1 {
		t.Errorf("counts = %d/%d, want 2/1", h.Count(a), h.Count(b))
	}
	if !h.IsLast(a) || h.IsLast(b) {
		t.Error("IsLast mismatch")
	}
	if h.IsLastTwo(a) {
		t.Error("a did not move twice in a row")
	}

	h.Push(a)
	if !h.IsLastTwo(a) {
		t.Error("a moved twice in a row")
	}
}
