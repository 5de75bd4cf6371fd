package state

import (
	"io"
	"log/slog"
	"sort"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/config"
	"github.com/bloglist/bloglist-tui/internal/tui/components"
	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Store  config.SessionStore
	Logger *slog.Logger

	// Session is nil while logged out; the view tree is chosen from it alone.
	Session *api.Session

	// Blogs is the canonical collection in server order. Display order is
	// derived by SortedBlogs and never written back.
	Blogs []api.Blog

	// List state
	Cursor         int             // index into SortedBlogs
	Expanded       map[string]bool // blog id -> expanded
	PendingLikes   map[string]bool // blog id -> like request outstanding
	PendingRemoves map[string]bool // blog id -> delete request outstanding

	// ConfirmDelete is the blog awaiting delete confirmation.
	ConfirmDelete *api.Blog

	// Forms
	LoginForm      *LoginForm
	BlogForm       *BlogForm
	ShowCreateForm bool

	// In-flight requests, one flag per operation so they never block
	// each other.
	Fetching  bool
	LoggingIn bool
	Creating  bool

	// UI state
	ShowHelp bool
	Width    int
	Height   int

	// Components
	Notifier *components.Notifier
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState
}

// New creates the initial, logged-out state.
func New(client *api.Client, cfg *config.Config, store config.SessionStore, logger *slog.Logger) *State {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &State{
		Client:       client,
		Config:       cfg,
		Store:        store,
		Logger:       logger,
		Expanded:     make(map[string]bool),
		PendingLikes:   make(map[string]bool),
		PendingRemoves: make(map[string]bool),
		LoginForm:    NewLoginForm(),
		BlogForm:     NewBlogForm(),
		Notifier:     components.NewNotifier(cfg.NotificationDuration()),
		Spinner:      s,
		Keymap:       DefaultKeymap(),
		KeyState:     &KeyState{},
	}
}

// Busy reports whether any request that shows the spinner is outstanding.
func (s *State) Busy() bool {
	return s.Fetching || s.LoggingIn || s.Creating
}

// LoggedIn reports whether a session is held.
func (s *State) LoggedIn() bool {
	return s.Session != nil
}

// SortedBlogs returns a copy of the blogs ordered by likes, most liked first.
// Blogs with equal likes keep their collection order.
func (s *State) SortedBlogs() []api.Blog {
	sorted := make([]api.Blog, len(s.Blogs))
	copy(sorted, s.Blogs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Likes > sorted[j].Likes
	})
	return sorted
}

// BlogIndex returns the index of the blog with id in Blogs, or -1.
func (s *State) BlogIndex(id string) int {
	for i := range s.Blogs {
		if s.Blogs[i].ID == id {
			return i
		}
	}
	return -1
}

// SelectedBlog returns the blog under the cursor, or nil when the list is empty.
func (s *State) SelectedBlog() *api.Blog {
	sorted := s.SortedBlogs()
	if s.Cursor < 0 || s.Cursor >= len(sorted) {
		return nil
	}
	b := sorted[s.Cursor]
	return &b
}

// CanDelete reports whether the delete action is offered for b.
func (s *State) CanDelete(b api.Blog) bool {
	return s.Session.Owns(b)
}

// ClampCursor keeps the cursor within the list.
func (s *State) ClampCursor() {
	if s.Cursor >= len(s.Blogs) {
		s.Cursor = len(s.Blogs) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// FollowBlog moves the cursor to wherever the blog with id now sorts.
func (s *State) FollowBlog(id string) {
	for i, b := range s.SortedBlogs() {
		if b.ID == id {
			s.Cursor = i
			return
		}
	}
	s.ClampCursor()
}
