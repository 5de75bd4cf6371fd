package components

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/tui/styles"
)

// FieldKind is the input type of a field.
type FieldKind string

// Input kinds understood by NewField.
const (
	KindText     FieldKind = "text"
	KindPassword FieldKind = "password"
)

// Field is a single form input: its current value, a change handler
// (Update), the rendering (View) and a reset back to empty.
type Field struct {
	label string
	kind  FieldKind
	input textinput.Model
}

var _ Focusable = (*Field)(nil)

// NewField creates an empty, unfocused field.
func NewField(label string, kind FieldKind) *Field {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 500
	input.Width = 40
	input.Cursor.SetMode(cursor.CursorStatic)
	if kind == KindPassword {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}

	return &Field{
		label: label,
		kind:  kind,
		input: input,
	}
}

// Label returns the field label.
func (f *Field) Label() string {
	return f.label
}

// Kind returns the input kind the field was created with.
func (f *Field) Kind() FieldKind {
	return f.kind
}

// Value returns the current value.
func (f *Field) Value() string {
	return f.input.Value()
}

// SetValue replaces the current value.
func (f *Field) SetValue(v string) {
	f.input.SetValue(v)
}

// Reset returns the field to its initial empty value.
func (f *Field) Reset() {
	f.input.Reset()
}

// Update applies an input event to the value.
func (f *Field) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

// Focus focuses the field.
func (f *Field) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the field.
func (f *Field) Blur() {
	f.input.Blur()
}

// Focused reports whether the field has focus.
func (f *Field) Focused() bool {
	return f.input.Focused()
}

// SetWidth sets the visible width of the input.
func (f *Field) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	f.input.Width = width
}

// View renders the label and the boxed input.
func (f *Field) View() string {
	box := styles.Input
	if f.Focused() {
		box = styles.InputFocused
	}
	return styles.InputLabel.Render(f.label) + "\n" + box.Render(f.input.View())
}
