// Package tui provides the terminal user interface for the bloglist.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/config"
	"github.com/bloglist/bloglist-tui/internal/tui/logic"
	"github.com/bloglist/bloglist-tui/internal/tui/state"
	"github.com/bloglist/bloglist-tui/internal/tui/ui"
)

// App is the root model. State is shared by the handler, which updates it,
// and the renderer, which draws it.
type App struct {
	state    *state.State
	handler  *logic.Handler
	renderer *ui.Renderer
}

var _ tea.Model = (*App)(nil)

// NewApp creates a new App instance.
func NewApp(client *api.Client, cfg *config.Config, store config.SessionStore, logger *slog.Logger) *App {
	s := state.New(client, cfg, store, logger)
	return &App{
		state:    s,
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
