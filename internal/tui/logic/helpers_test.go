package logic

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zalando/go-keyring"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/api/apitest"
	"github.com/bloglist/bloglist-tui/internal/config"
	"github.com/bloglist/bloglist-tui/internal/tui/components"
	"github.com/bloglist/bloglist-tui/internal/tui/state"
)

type testEnv struct {
	h     *Handler
	srv   *apitest.Server
	store config.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	keyring.MockInit()

	srv := apitest.NewServer()
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = srv.URL

	store := config.NewSessionStore(t.TempDir())
	s := state.New(api.NewClient(srv.URL), cfg, store, nil)
	s.Notifier = components.NewNotifier(time.Millisecond)

	return &testEnv{h: NewHandler(s), srv: srv, store: store}
}

// drain runs cmd and feeds every resulting message back through the handler
// until nothing is left. Spinner ticks and notification expiries are dropped
// so the state stays inspectable after a run.
func drain(h *Handler, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			drain(h, c)
		}
	case spinner.TickMsg, components.NotificationExpiredMsg:
	default:
		drain(h, h.Update(msg))
	}
}

func press(h *Handler, key string) {
	drain(h, h.Update(keyMsg(key)))
}

func typeText(h *Handler, text string) {
	drain(h, h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}))
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// login goes through the login form as a user would.
func (e *testEnv) login(t *testing.T, username, password string) {
	t.Helper()
	typeText(e.h, username)
	press(e.h, "enter")
	typeText(e.h, password)
	press(e.h, "enter")
}

// start runs Init and logs in as the given user.
func (e *testEnv) start(t *testing.T, username, password string) {
	t.Helper()
	drain(e.h, e.h.Init())
	e.login(t, username, password)
	if !e.h.LoggedIn() {
		t.Fatalf("expected login as %s to succeed, notification %q", username, e.h.Notifier.Text())
	}
}

// expand selects the blog with id and expands it.
func (e *testEnv) expand(t *testing.T, id string) {
	t.Helper()
	e.h.FollowBlog(id)
	if b := e.h.SelectedBlog(); b == nil || b.ID != id {
		t.Fatalf("could not select blog %s", id)
	}
	if !e.h.Expanded[id] {
		press(e.h, "enter")
	}
}

func assertSortedByLikes(t *testing.T, h *Handler) {
	t.Helper()
	sorted := h.SortedBlogs()
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Likes < sorted[i].Likes {
			t.Fatalf("display order not by likes: %d before %d", sorted[i-1].Likes, sorted[i].Likes)
		}
	}
}
