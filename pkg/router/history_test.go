package router

import "testing"

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Current(); ok {
		t.Error("empty history must have no current entry")
	}
	if _, ok := h.Back(); ok {
		t.Error("Back on empty history must report false")
	}
	if _, ok := h.Forward(); ok {
		t.Error("Forward on empty history must report false")
	}
}

func TestHistoryPushTruncatesForward(t *testing.T) {
	h := NewHistory()
	h.Push("/a")
	h.Push("/b")
	h.Push("/c")
	h.Back()
	h.Back()
	h.Push("/d")

	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2 after push over forward entries", h.Len())
	}
	if cur, _ := h.Current(); cur != "/d" {
		t.Errorf("Current = %q, want /d", cur)
	}
	if _, ok := h.Forward(); ok {
		t.Error("forward entries must be discarded by Push")
	}
}

func TestHistoryReplace(t *testing.T) {
	h := NewHistory()
	h.Replace("/a")
	if h.Len() != 1 {
		t.Errorf("Len = %d, replace on empty history must push", h.Len())
	}

	h.Push("/b")
	h.Replace("/c")
	if h.Len() != 2 {
		t.Errorf("Len = %d, want 2", h.Len())
	}
	if cur, _ := h.Current(); cur != "/c" {
		t.Errorf("Current = %q, want /c", cur)
	}
	if prev, _ := h.Back(); prev != "/a" {
		t.Errorf("Back = %q, want /a", prev)
	}
}
