package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/bloglist/bloglist-tui/internal/api"
)

const desktopTitle = "Bloglist"

// notify shows text in the status line and, when enabled, as a desktop
// notification.
func (h *Handler) notify(text string, isError bool) tea.Cmd {
	if isError {
		h.Logger.Warn("notification", "text", text)
	} else {
		h.Logger.Debug("notification", "text", text)
	}

	cmd := h.Notifier.Show(text, isError)
	if !h.Config.UI.DesktopNotifications {
		return cmd
	}

	logger := h.Logger
	return tea.Batch(cmd, func() tea.Msg {
		if err := beeep.Notify(desktopTitle, text, ""); err != nil {
			logger.Debug("desktop notification failed", "error", err)
		}
		return nil
	})
}

// errorText formats a failed operation for the status line. An expired or
// rejected token gets a hint to log in again.
func errorText(action string, err error) string {
	if api.IsUnauthorized(err) {
		return fmt.Sprintf("%s: session expired, log out and log in again", action)
	}
	if apiErr, ok := api.IsAPIError(err); ok {
		return fmt.Sprintf("%s: %s", action, apiErr.Message)
	}
	return fmt.Sprintf("%s: %v", action, err)
}
