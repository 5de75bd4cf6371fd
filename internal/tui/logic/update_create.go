package logic

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/api"
)

// handleCreateKeyMsg handles input while the new blog form is open.
func (h *Handler) handleCreateKeyMsg(msg tea.KeyMsg) tea.Cmd {
	form := h.BlogForm
	switch msg.String() {
	case h.Keymap.Back.Key:
		// Cancel hides the form; typed values stay for next time.
		h.ShowCreateForm = false
		return nil
	case h.Keymap.NextField.Key, "down":
		return form.NextField()
	case h.Keymap.PrevField.Key, "up":
		return form.PrevField()
	case h.Keymap.Submit.Key:
		return h.submitCreate()
	case "enter":
		if form.FocusIndex < len(form.Fields)-1 {
			return form.NextField()
		}
		return h.submitCreate()
	}
	return form.Update(msg)
}

func (h *Handler) submitCreate() tea.Cmd {
	if h.Creating {
		return nil
	}
	req := h.BlogForm.ToCreateRequest()
	h.Creating = true

	client := h.Client
	return tea.Batch(h.Spinner.Tick, func() tea.Msg {
		ctx, cancel := h.requestContext()
		defer cancel()
		blog, err := client.CreateBlog(ctx, req)
		return blogCreatedMsg{blog: blog, req: req, err: err}
	})
}

func (h *Handler) handleBlogCreated(msg blogCreatedMsg) tea.Cmd {
	h.Creating = false
	if msg.err != nil {
		h.Logger.Warn("create failed", "title", msg.req.Title, "error", msg.err)
		return h.notify(errorText("could not add blog", msg.err), true)
	}

	blog := *msg.blog
	if !blog.User.Populated() && h.Session != nil {
		blog.User = &api.Owner{
			ID:       blog.OwnerID(),
			Name:     h.Session.Name,
			Username: h.Session.Username,
		}
		if blog.User.ID == "" {
			blog.User.ID = h.Session.UserID
		}
	}

	selected := h.selectedID()
	h.Blogs = append(h.Blogs, blog)
	h.FollowBlog(selected)

	h.ShowCreateForm = false
	resetCmd := h.BlogForm.Reset()
	h.Logger.Info("blog created", "blog_id", blog.ID)

	return tea.Batch(
		resetCmd,
		h.notify(fmt.Sprintf("added new blog: %s by %s", blog.Title, blog.Author), false),
	)
}
