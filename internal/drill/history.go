package drill

import "github.com/google/uuid"

// HistoryCap is how many recent moves the weighting heuristic sees.
const HistoryCap = 5

// History is the ordered sequence of recently moved piece IDs, oldest
// first, capped at HistoryCap entries.
type History struct {
	ids []uuid.UUID
}

// NewHistory creates an empty move history.
func NewHistory() *History {
	return &History{ids: make([]uuid.UUID, 0, HistoryCap)}
}

// Push appends a piece ID, evicting the oldest entry past the cap.
func (h *History) Push(id uuid.UUID) {
	h.ids = append(h.ids, id)
	if len(h.ids) > HistoryCap {
		h.ids = h.ids[1:]
	}
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.ids)
}

// IDs returns the recorded IDs, oldest first.
func (h *History) IDs() []uuid.UUID {
	return h.ids
}

// Count returns how many times the given ID occurs in the history.
func (h *History) Count(id uuid.UUID) int {
	n := 0
	for _, e := range h.ids {
		if e == id {
			n++
		}
	}
	return n
}

// IsLast returns true if the most recent entry is the given ID.
func (h *History) IsLast(id uuid.UUID) bool {
	return len(h.ids) > 0 && h.ids[len(h.ids)-1] == id
}

// IsLastTwo returns true if the two most recent entries are both the
// given ID.
func (h *History) IsLastTwo(id uuid.UUID) bool {
	n := len(h.ids)
	return n >= 2 && h.ids[n-1] == id && h.ids[n-2] == id
}
