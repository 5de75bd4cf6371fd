package components

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

// BlogItem renders one blog as a card. Collapsed it shows title and author;
// expanded it shows the link, likes and owner with the actions available.
type BlogItem struct {
	Blog      api.Blog
	Expanded  bool
	Selected  bool
	CanDelete bool
	Width     int
}

// View renders the card.
func (b BlogItem) View() string {
	style := styles.Card
	if b.Selected {
		style = styles.CardSelected
	}

	inner := b.Width - style.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	if !b.Expanded {
		line := styles.CardTitle.Render(truncate(b.Blog.Title, inner)) +
			" " + styles.CardAuthor.Render(truncate(b.Blog.Author, inner-runewidth.StringWidth(b.Blog.Title)-1))
		return style.Width(inner).Render(line)
	}

	var sb strings.Builder
	sb.WriteString(styles.CardTitle.Render(truncate(b.Blog.Title, inner)) + "\n")
	sb.WriteString(styles.CardAuthor.Render(truncate(b.Blog.Author, inner)) + "\n")
	sb.WriteString(styles.CardURL.Render(truncate(b.Blog.URL, inner)) + "\n")
	sb.WriteString(styles.Likes.Render(fmt.Sprintf("likes: %d", b.Blog.Likes)) + "  " + styles.Button.Render("[l] like"))
	sb.WriteString("\n")
	sb.WriteString("added by: " + b.Blog.User.DisplayName())
	if b.CanDelete {
		sb.WriteString("  " + styles.DangerButton.Render("[d] delete"))
	}

	return style.Width(inner).Render(sb.String())
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
