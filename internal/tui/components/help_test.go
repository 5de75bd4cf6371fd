package components

import (
	"strings"
	"testing"
)

func TestHelpView(t *testing.T) {
	h := NewHelp()
	if !strings.Contains(h.View(), "No keybindings") {
		t.Error("expected placeholder without items")
	}

	h.SetWidth(100)
	h.SetItems([][]string{
		{"Navigation", ""},
		{"j/k", "move up/down"},
		{"", ""},
		{"Blogs", ""},
		{"l", "like"},
	})

	view := h.View()
	for _, want := range []string{"Navigation", "Blogs", "move up/down", "like"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in help view", want)
		}
	}
}
