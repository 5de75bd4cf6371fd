package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

// DefaultNotificationDuration is how long a message stays visible.
const DefaultNotificationDuration = 5 * time.Second

// Notifier shows one transient status message at a time.
//
// Every Show reschedules the clear: expiry messages carry the sequence number
// of the Show that scheduled them, and only the latest one clears. A message
// shown one second after another therefore gets its full display window.
type Notifier struct {
	text     string
	isError  bool
	seq      int
	duration time.Duration
}

var _ Component = (*Notifier)(nil)

// NewNotifier creates a notifier whose messages last for d.
func NewNotifier(d time.Duration) *Notifier {
	if d <= 0 {
		d = DefaultNotificationDuration
	}
	return &Notifier{duration: d}
}

// Show displays text and returns the command that will expire it.
func (n *Notifier) Show(text string, isError bool) tea.Cmd {
	n.seq++
	n.text = text
	n.isError = isError

	seq := n.seq
	return tea.Tick(n.duration, func(time.Time) tea.Msg {
		return NotificationExpiredMsg{Seq: seq}
	})
}

// Update clears the message when its own expiry arrives; stale expiries are
// ignored.
func (n *Notifier) Update(msg tea.Msg) tea.Cmd {
	if m, ok := msg.(NotificationExpiredMsg); ok && m.Seq == n.seq {
		n.text = ""
		n.isError = false
	}
	return nil
}

// Text returns the visible message, or "" when none.
func (n *Notifier) Text() string {
	return n.text
}

// IsError reports whether the visible message is an error.
func (n *Notifier) IsError() bool {
	return n.isError
}

// Seq returns the sequence number of the latest Show.
func (n *Notifier) Seq() int {
	return n.seq
}

// Duration returns the display window.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// View renders nothing when empty, otherwise the message styled by kind.
func (n *Notifier) View() string {
	if n.text == "" {
		return ""
	}
	if n.isError {
		return styles.NotificationError.Render(n.text)
	}
	return styles.NotificationSuccess.Render(n.text)
}
