package ui

import (
	"strings"

	"github.com/bloglist/bloglist-tui/internal/tui/state"
	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

func (r *Renderer) renderCreateForm() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("create new"))
	b.WriteString("\n\n")
	for _, field := range r.BlogForm.Fields {
		b.WriteString(field.View() + "\n")
	}
	return styles.Dialog.Render(b.String())
}

func (r *Renderer) formHints() []state.Key {
	return []state.Key{
		r.Keymap.NextField,
		{Key: "enter", Help: "create"},
		r.Keymap.Back,
	}
}
