// Package ui renders the application state.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloglist/bloglist-tui/internal/tui/components"
	"github.com/bloglist/bloglist-tui/internal/tui/state"
	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

// Renderer renders State. It never mutates it.
type Renderer struct {
	*state.State

	help *components.Help
}

// NewRenderer creates a renderer over s.
func NewRenderer(s *state.State) *Renderer {
	return &Renderer{
		State: s,
		help:  components.NewHelp(),
	}
}

// View renders the whole screen. Which tree is shown depends only on
// whether a session is held.
func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	var content string
	if r.LoggedIn() {
		content = r.renderBlogs()
	} else {
		content = r.renderLogin()
	}

	switch {
	case r.ShowHelp:
		content = r.overlayContent(r.renderHelp())
	case r.ConfirmDelete != nil:
		content = r.overlayContent(r.renderConfirmDelete())
	}

	return content
}

// overlayContent centers a dialog on the screen in place of the content.
func (r *Renderer) overlayContent(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}

// renderStatusBar renders the spinner while a request is out and the key
// hints for the current surface.
func (r *Renderer) renderStatusBar(hints []state.Key) string {
	left := ""
	if r.Busy() {
		left = r.Spinner.View() + " loading"
	}

	parts := make([]string, 0, len(hints))
	for _, k := range hints {
		parts = append(parts, styles.HelpKey.Render(k.Key)+" "+styles.HelpDesc.Render(k.Help))
	}
	right := strings.Join(parts, "  ")

	gap := r.Width - lipgloss.Width(left) - lipgloss.Width(right) - styles.StatusBar.GetHorizontalFrameSize()
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}
