package model

// History remembers the hashes of recent generations for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size recent states; size < 1 is treated as 1
func NewHistory(size int) *History {
	return &History{size: max(size, 1)}
}

// Observe records g and reports whether it repeats one of the remembered states.
// A still life repeats its predecessor, a period-2 oscillator the one before that.
func (h *History) Observe(g *Grid) bool {
	currentHash := g.GetGridHash()

	repeated := false
	for _, hash := range h.hashes {
		if hash == currentHash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, currentHash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
