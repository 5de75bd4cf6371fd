package ui

import (
	"strings"

	"github.com/bloglist/bloglist-tui/internal/tui/state"
	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

func (r *Renderer) renderLogin() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("log in to application"))
	b.WriteString("\n")
	if n := r.Notifier.View(); n != "" {
		b.WriteString(n + "\n")
	}
	b.WriteString("\n")

	for _, field := range r.LoginForm.Fields {
		b.WriteString(field.View() + "\n\n")
	}

	hints := []state.Key{
		r.Keymap.NextField,
		{Key: "enter", Help: "login"},
		{Key: "ctrl+c", Help: "quit"},
	}
	return styles.App.Render(b.String()) + "\n" + r.renderStatusBar(hints)
}
