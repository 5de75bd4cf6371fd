package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bloglist/bloglist-tui/internal/tui/components"
	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

func (r *Renderer) renderBlogs() string {
	var header strings.Builder
	header.WriteString(styles.Title.Render("Blogs"))
	header.WriteString("\n")
	if n := r.Notifier.View(); n != "" {
		header.WriteString(n + "\n")
	}
	name := r.Session.Name
	if name == "" {
		name = r.Session.Username
	}
	header.WriteString(styles.Subtitle.Render("Logged in as " + name))
	header.WriteString("\n")

	var statusBar string
	var body string
	if r.ShowCreateForm {
		statusBar = r.renderStatusBar(r.formHints())
		body = r.renderCreateForm()
	} else {
		statusBar = r.renderStatusBar(r.Keymap.ShortHelp())
		frame := styles.App.GetVerticalFrameSize()
		height := r.Height - lipgloss.Height(header.String()) - lipgloss.Height(statusBar) - frame - 1
		body = r.renderBlogList(r.Width-styles.App.GetHorizontalFrameSize(), height)
	}

	content := header.String() + "\n" + body
	return styles.App.Render(content) + "\n" + statusBar
}

// renderBlogList renders the cards in display order, scrolled so the card
// under the cursor is visible.
func (r *Renderer) renderBlogList(width, height int) string {
	blogs := r.SortedBlogs()
	if len(blogs) == 0 {
		return styles.Muted.Render("no blogs yet, press n to add one")
	}

	cards := make([]string, len(blogs))
	for i, blog := range blogs {
		cards[i] = components.BlogItem{
			Blog:      blog,
			Expanded:  r.Expanded[blog.ID],
			Selected:  i == r.Cursor,
			CanDelete: r.CanDelete(blog),
			Width:     width,
		}.View()
	}

	start, end := visibleRange(cards, r.Cursor, height)
	return strings.Join(cards[start:end], "\n")
}

// visibleRange returns the window of cards that fits in height and contains
// the cursor. A height of zero or less shows everything.
func visibleRange(cards []string, cursor, height int) (int, int) {
	if height <= 0 {
		return 0, len(cards)
	}
	cursor = min(max(cursor, 0), len(cards)-1)

	start := 0
	used := 0
	for i := cursor; i >= 0; i-- {
		h := lipgloss.Height(cards[i])
		if used+h > height && i != cursor {
			break
		}
		used += h
		start = i
	}

	end := cursor + 1
	for end < len(cards) {
		h := lipgloss.Height(cards[end])
		if used+h > height {
			break
		}
		used += h
		end++
	}
	return start, end
}
