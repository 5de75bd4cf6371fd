package logic

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/config"
)

// Init fetches the collection and restores any stored session.
func (h *Handler) Init() tea.Cmd {
	h.Fetching = true
	return tea.Batch(
		h.Spinner.Tick,
		h.loadBlogs(),
		h.restoreSession(),
	)
}

// loadBlogs fetches the whole collection.
func (h *Handler) loadBlogs() tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		ctx, cancel := h.requestContext()
		defer cancel()
		blogs, err := client.GetBlogs(ctx)
		return blogsLoadedMsg{blogs: blogs, err: err}
	}
}

// restoreSession reads the stored session. An absent or unreadable entry
// leaves the application logged out.
func (h *Handler) restoreSession() tea.Cmd {
	store := h.Store
	logger := h.Logger
	return func() tea.Msg {
		if store == nil {
			return sessionRestoredMsg{}
		}
		session, err := store.Load()
		if err != nil {
			if !errors.Is(err, config.ErrNoSession) {
				logger.Warn("failed to restore session", "error", err)
			}
			return sessionRestoredMsg{}
		}
		return sessionRestoredMsg{session: session}
	}
}

func (h *Handler) handleBlogsLoaded(msg blogsLoadedMsg) tea.Cmd {
	h.Fetching = false
	if msg.err != nil {
		h.Logger.Error("failed to load blogs", "error", msg.err)
		return h.notify(errorText("could not load blogs", msg.err), true)
	}

	var selected string
	if b := h.SelectedBlog(); b != nil {
		selected = b.ID
	}

	// A delete still in flight wins over a listing fetched before it landed.
	blogs := make([]api.Blog, 0, len(msg.blogs))
	for _, b := range msg.blogs {
		if !h.PendingRemoves[b.ID] {
			blogs = append(blogs, b)
		}
	}

	h.Blogs = blogs
	h.FollowBlog(selected)
	h.Logger.Debug("blogs loaded", "count", len(msg.blogs))
	return nil
}

func (h *Handler) handleSessionRestored(msg sessionRestoredMsg) tea.Cmd {
	if msg.session == nil {
		return nil
	}
	// A login that completed while the store was read wins.
	if h.Session != nil {
		return nil
	}
	h.setSession(msg.session)
	h.Logger.Info("session restored", "username", msg.session.Username)
	return nil
}
