package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zalando/go-keyring"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/config"
)

func TestAppStartsAtLogin(t *testing.T) {
	keyring.MockInit()

	app := NewApp(api.NewClient("http://127.0.0.1:0"), config.DefaultConfig(), config.NewSessionStore(t.TempDir()), nil)
	if app.Init() == nil {
		t.Fatal("expected startup commands")
	}

	if view := app.View(); view != "Loading..." {
		t.Errorf("expected placeholder before the first resize, got %q", view)
	}

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(model.View(), "log in to application") {
		t.Error("expected login view without a stored session")
	}
}
