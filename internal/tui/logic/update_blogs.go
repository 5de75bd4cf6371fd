package logic

import (
	"fmt"
	"slices"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/api"
)

// handleListKeyMsg handles keys on the blog list.
func (h *Handler) handleListKeyMsg(msg tea.KeyMsg) tea.Cmd {
	action, ok := h.KeyState.HandleKey(msg, h.Keymap)
	if !ok {
		return nil
	}

	switch action {
	case "up":
		h.moveCursor(-1)
	case "down":
		h.moveCursor(1)
	case "top":
		h.Cursor = 0
	case "bottom":
		h.Cursor = max(0, len(h.Blogs)-1)
	case "toggle":
		h.handleToggle()
	case "like":
		return h.handleLike()
	case "delete":
		h.handleDeleteRequest()
	case "copy":
		return h.handleCopy()
	case "new":
		h.ShowCreateForm = true
		return h.BlogForm.Focus(h.BlogForm.FocusIndex)
	case "refresh":
		return h.refresh()
	case "logout":
		return h.logout()
	case "help":
		h.ShowHelp = true
	case "quit":
		return tea.Quit
	}
	return nil
}

func (h *Handler) moveCursor(delta int) {
	h.Cursor += delta
	h.ClampCursor()
}

// selectedID returns the id under the cursor so the selection can survive a
// reorder.
func (h *Handler) selectedID() string {
	if b := h.SelectedBlog(); b != nil {
		return b.ID
	}
	return ""
}

func (h *Handler) handleToggle() {
	b := h.SelectedBlog()
	if b == nil {
		return
	}
	h.Expanded[b.ID] = !h.Expanded[b.ID]
}

// handleLike adds one like optimistically and sends the update. A blog with
// a like still in flight ignores further likes.
func (h *Handler) handleLike() tea.Cmd {
	b := h.SelectedBlog()
	if b == nil || !h.Expanded[b.ID] || h.PendingLikes[b.ID] {
		return nil
	}

	i := h.BlogIndex(b.ID)
	if i < 0 {
		return nil
	}
	previous := h.Blogs[i]
	liked := previous
	liked.Likes++

	h.Blogs[i] = liked
	h.PendingLikes[liked.ID] = true
	h.FollowBlog(liked.ID)

	client := h.Client
	req := api.NewUpdateRequest(liked)
	return func() tea.Msg {
		ctx, cancel := h.requestContext()
		defer cancel()
		updated, err := client.UpdateBlog(ctx, liked.ID, req)
		return blogLikedMsg{id: liked.ID, previous: previous, blog: updated, err: err}
	}
}

func (h *Handler) handleBlogLiked(msg blogLikedMsg) tea.Cmd {
	delete(h.PendingLikes, msg.id)

	i := h.BlogIndex(msg.id)
	if i < 0 {
		// Removed while the like was in flight.
		return nil
	}
	selected := h.selectedID()
	defer h.FollowBlog(selected)

	if msg.err != nil {
		// Only undo our own increment; a refresh may have replaced the copy.
		if h.Blogs[i].Likes == msg.previous.Likes+1 {
			h.Blogs[i] = msg.previous
		}
		h.Logger.Warn("like rolled back", "blog_id", msg.id, "error", msg.err)
		return h.notify(errorText("could not like "+msg.previous.Title, msg.err), true)
	}

	if msg.blog == nil || msg.blog.ID != msg.id {
		// Empty or foreign response body; the optimistic copy stands.
		h.Logger.Debug("like response without blog", "blog_id", msg.id)
		return nil
	}

	updated := *msg.blog
	if !updated.User.Populated() {
		// The update route answers with the owner id only.
		updated.User = h.Blogs[i].User
	}
	h.Blogs[i] = updated
	return nil
}

// handleDeleteRequest asks for confirmation before removing a blog. Only the
// owner of an expanded blog is offered the action.
func (h *Handler) handleDeleteRequest() {
	b := h.SelectedBlog()
	if b == nil || !h.Expanded[b.ID] || !h.CanDelete(*b) {
		return
	}
	h.ConfirmDelete = b
}

func (h *Handler) handleConfirmKeyMsg(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case h.Keymap.Confirm.Key, "Y":
		blog := *h.ConfirmDelete
		h.ConfirmDelete = nil
		return h.removeBlog(blog)
	case h.Keymap.Cancel.Key, "N", h.Keymap.Back.Key:
		h.ConfirmDelete = nil
	}
	return nil
}

// removeBlog drops the blog from the collection and sends the delete. The
// prior index is kept so a failure can put it back where it was.
func (h *Handler) removeBlog(blog api.Blog) tea.Cmd {
	i := h.BlogIndex(blog.ID)
	if i < 0 {
		return nil
	}
	removed := h.Blogs[i]
	h.Blogs = slices.Delete(slices.Clone(h.Blogs), i, i+1)
	delete(h.Expanded, removed.ID)
	h.PendingRemoves[removed.ID] = true
	h.ClampCursor()

	client := h.Client
	return func() tea.Msg {
		ctx, cancel := h.requestContext()
		defer cancel()
		err := client.DeleteBlog(ctx, removed.ID)
		return blogRemovedMsg{blog: removed, index: i, err: err}
	}
}

func (h *Handler) handleBlogRemoved(msg blogRemovedMsg) tea.Cmd {
	delete(h.PendingRemoves, msg.blog.ID)

	if msg.err != nil {
		if h.BlogIndex(msg.blog.ID) < 0 {
			selected := h.selectedID()
			index := min(msg.index, len(h.Blogs))
			h.Blogs = slices.Insert(h.Blogs, index, msg.blog)
			h.FollowBlog(selected)
		}
		h.Logger.Warn("remove rolled back", "blog_id", msg.blog.ID, "error", msg.err)
		return h.notify(errorText("could not remove "+msg.blog.Title, msg.err), true)
	}

	h.Logger.Info("blog removed", "blog_id", msg.blog.ID)
	return h.notify(fmt.Sprintf("removed blog %s", msg.blog.Title), false)
}

// handleCopy copies the selected blog's url to the clipboard.
func (h *Handler) handleCopy() tea.Cmd {
	b := h.SelectedBlog()
	if b == nil || b.URL == "" {
		return nil
	}
	url := b.URL
	return func() tea.Msg {
		return clipboardMsg{url: url, err: clipboard.WriteAll(url)}
	}
}

// refresh re-fetches the whole collection.
func (h *Handler) refresh() tea.Cmd {
	if h.Fetching {
		return nil
	}
	h.Fetching = true
	return tea.Batch(h.Spinner.Tick, h.loadBlogs())
}
