package router

// History is an in-process stand-in for browser session history: a stack
// of visited paths with a cursor. Pushing truncates any forward entries,
// the way a browser discards its forward stack on fresh navigation.
type History struct {
	entries []string
	pos     int // index of the current entry; -1 when empty
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{pos: -1}
}

// Push appends a new entry after the cursor, discarding forward entries.
func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.pos+1], path)
	h.pos = len(h.entries) - 1
}

// Replace swaps the current entry, or pushes if the history is empty.
func (h *History) Replace(path string) {
	if h.pos < 0 {
		h.Push(path)
		return
	}
	h.entries[h.pos] = path
}

// Back moves the cursor one entry back.
func (h *History) Back() (string, bool) {
	if h.pos <= 0 {
		return "", false
	}
	h.pos--
	return h.entries[h.pos], true
}

// Forward moves the cursor one entry forward.
func (h *History) Forward() (string, bool) {
	if h.pos < 0 || h.pos >= len(h.entries)-1 {
		return "", false
	}
	h.pos++
	return h.entries[h.pos], true
}

// Current returns the entry under the cursor.
func (h *History) Current() (string, bool) {
	if h.pos < 0 {
		return "", false
	}
	return h.entries[h.pos], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}
