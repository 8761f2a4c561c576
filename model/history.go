package model

const defaultHistorySize = 5

// History keeps recent grid hashes to detect still lifes and short cycles
type History struct {
	limit  int
	hashes []string
}

// NewHistory keeps at most limit hashes; non-positive limits fall back to 5
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistorySize
	}
	return &History{limit: limit}
}

// Record adds the grid's current state to the history
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether the grid repeats one of the last three recorded states
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) == 0 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
