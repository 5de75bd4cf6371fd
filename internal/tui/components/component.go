// Package components provides reusable UI components for the bloglist TUI.
package components

import tea "github.com/charmbracelet/bubbletea"

// Component is a piece of UI that keeps its own state, handles the messages
// addressed to it and renders itself.
type Component interface {
	// Update handles a message and returns any follow-up command.
	Update(msg tea.Msg) tea.Cmd

	// View renders the component to a string.
	View() string
}

// Focusable is an optional interface for components that can receive focus.
type Focusable interface {
	Component
	// Focus sets the component as focused.
	Focus() tea.Cmd
	// Blur removes focus from the component.
	Blur()
	// Focused returns whether the component is focused.
	Focused() bool
}
