package ui

import (
	"fmt"

	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

func (r *Renderer) renderConfirmDelete() string {
	b := r.ConfirmDelete
	prompt := fmt.Sprintf("Remove blog %s by %s? (%s/%s)", b.Title, b.Author, r.Keymap.Confirm.Key, r.Keymap.Cancel.Key)
	return styles.Dialog.Render(styles.DialogTitle.Render("Delete") + "\n\n" + prompt)
}

func (r *Renderer) renderHelp() string {
	r.help.SetWidth(r.Width)
	r.help.SetItems(r.Keymap.HelpItems())
	return r.help.View()
}
