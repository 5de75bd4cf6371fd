package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

// Help renders the key binding overview. Items are {key, description}
// pairs; a pair with an empty description starts a section, an empty pair
// is a blank line.
type Help struct {
	width int
	items [][]string
}

// NewHelp creates an empty help view.
func NewHelp() *Help {
	return &Help{}
}

// SetWidth sets the available width.
func (h *Help) SetWidth(width int) {
	h.width = width
}

// SetItems sets the bindings to show.
func (h *Help) SetItems(items [][]string) {
	h.items = items
}

// View renders the bindings in two columns; sections after the first half
// go to the right.
func (h *Help) View() string {
	if len(h.items) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	sections := 0
	for _, item := range h.items {
		if len(item) == 2 && item[0] != "" && item[1] == "" {
			sections++
		}
	}

	var left, right strings.Builder
	column := &left
	seen := 0
	keyStyle := styles.HelpKey.Width(12).Align(lipgloss.Right).PaddingRight(2)

	for _, item := range h.items {
		if len(item) < 2 {
			continue
		}
		key, desc := item[0], item[1]

		switch {
		case key != "" && desc == "":
			seen++
			if seen > (sections+1)/2 {
				column = &right
			}
			column.WriteString("\n" + styles.Subtitle.Render(key) + "\n")
		case key == "" && desc == "":
			column.WriteString("\n")
		default:
			column.WriteString(keyStyle.Render(key) + styles.HelpDesc.Render(desc) + "\n")
		}
	}

	colWidth := min(max(h.width/2, 30), 50)
	columnStyle := lipgloss.NewStyle().Width(colWidth).PaddingLeft(2).PaddingRight(2)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(left.String()),
		columnStyle.Render(right.String()),
	))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Press ESC or ? to close"))

	return styles.Dialog.Render(b.String())
}
