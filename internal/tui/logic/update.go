// Package logic holds the update side of the application: key handling,
// remote calls as commands, and the result handling that mutates state.
package logic

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/tui/components"
	"github.com/bloglist/bloglist-tui/internal/tui/state"
)

// Handler is the only place State is mutated.
type Handler struct {
	*state.State
}

// NewHandler creates a handler over s.
func NewHandler(s *state.State) *Handler {
	return &Handler{State: s}
}

// Update applies msg to the state and returns follow-up commands.
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		h.Width = msg.Width
		h.Height = msg.Height
		h.LoginForm.SetWidth(msg.Width / 2)
		h.BlogForm.SetWidth(msg.Width / 2)
		return nil

	case spinner.TickMsg:
		if !h.Busy() {
			return nil
		}
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case components.NotificationExpiredMsg:
		return h.Notifier.Update(msg)

	case blogsLoadedMsg:
		return h.handleBlogsLoaded(msg)

	case sessionRestoredMsg:
		return h.handleSessionRestored(msg)

	case loginResultMsg:
		return h.handleLoginResult(msg)

	case blogCreatedMsg:
		return h.handleBlogCreated(msg)

	case blogLikedMsg:
		return h.handleBlogLiked(msg)

	case blogRemovedMsg:
		return h.handleBlogRemoved(msg)

	case clipboardMsg:
		if msg.err != nil {
			return h.notify("failed to copy url: "+msg.err.Error(), true)
		}
		return h.notify("copied "+msg.url, false)
	}

	return nil
}

// handleKeyMsg routes a key press to the active surface. Overlays take
// precedence over forms, forms over the list.
func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if !h.LoggedIn() {
		return h.handleLoginKeyMsg(msg)
	}

	switch {
	case h.ConfirmDelete != nil:
		return h.handleConfirmKeyMsg(msg)
	case h.ShowHelp:
		switch msg.String() {
		case h.Keymap.Help.Key, h.Keymap.Back.Key, h.Keymap.Quit.Key:
			h.ShowHelp = false
		}
		return nil
	case h.ShowCreateForm:
		return h.handleCreateKeyMsg(msg)
	}

	return h.handleListKeyMsg(msg)
}

// requestContext bounds a remote call by the configured timeout.
func (h *Handler) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.Config.Timeout())
}
