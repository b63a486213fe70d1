package model

const historySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds a hash and keeps only the most recent ones
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded states,
// which covers still lifes and oscillators of period up to 3
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for _, previous := range h.hashes[len(h.hashes)-3:] {
		if previous == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}
