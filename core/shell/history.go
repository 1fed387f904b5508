package shell

// History is a fixed capacity, insertion ordered log of past command
// lines. Once full, each new line evicts the oldest entry.
type History struct {
	entries  []string
	capacity int
}

// NewHistory creates a History remembering up to capacity lines.
func NewHistory(capacity int) *History {
	return &History{capacity: capacity}
}

// Add records a command line.
func (h *History) Add(line string) {
	if h.capacity < 1 {
		return
	}
	if len(h.entries) >= h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = line
		return
	}
	h.entries = append(h.entries, line)
}

// Len reports the number of stored lines.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the stored lines, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
