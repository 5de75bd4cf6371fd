package state

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/tui/components"
)

// Form is an ordered set of fields with one focused at a time. Login and
// create-blog forms share it so both reset and navigate the same way.
type Form struct {
	Fields     []*components.Field
	FocusIndex int
}

func newForm(fields ...*components.Field) Form {
	f := Form{Fields: fields}
	f.Focus(0)
	return f
}

// Update forwards input to the focused field.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if f.FocusIndex < 0 || f.FocusIndex >= len(f.Fields) {
		return nil
	}
	return f.Fields[f.FocusIndex].Update(msg)
}

// NextField moves focus to the next field.
func (f *Form) NextField() tea.Cmd {
	return f.Focus((f.FocusIndex + 1) % len(f.Fields))
}

// PrevField moves focus to the previous field.
func (f *Form) PrevField() tea.Cmd {
	return f.Focus((f.FocusIndex - 1 + len(f.Fields)) % len(f.Fields))
}

// Focus focuses the field at index and blurs the others.
func (f *Form) Focus(index int) tea.Cmd {
	var cmd tea.Cmd
	f.FocusIndex = index
	for i, field := range f.Fields {
		if i == index {
			cmd = field.Focus()
			continue
		}
		field.Blur()
	}
	return cmd
}

// Reset empties every field and focuses the first one.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.Fields {
		field.Reset()
	}
	return f.Focus(0)
}

// IsEmpty reports whether every field is empty.
func (f *Form) IsEmpty() bool {
	for _, field := range f.Fields {
		if field.Value() != "" {
			return false
		}
	}
	return true
}

// SetWidth sets width of inputs
func (f *Form) SetWidth(width int) {
	for _, field := range f.Fields {
		field.SetWidth(width)
	}
}

// LoginForm holds the username and password fields.
type LoginForm struct {
	Form
}

// NewLoginForm creates an empty login form focused on the username.
func NewLoginForm() *LoginForm {
	return &LoginForm{
		Form: newForm(
			components.NewField("username", components.KindText),
			components.NewField("password", components.KindPassword),
		),
	}
}

// Username returns the username field.
func (f *LoginForm) Username() *components.Field { return f.Fields[0] }

// Password returns the password field.
func (f *LoginForm) Password() *components.Field { return f.Fields[1] }

// Credentials returns the submitted credentials. Values are sent as typed.
func (f *LoginForm) Credentials() api.Credentials {
	return api.Credentials{
		Username: f.Username().Value(),
		Password: f.Password().Value(),
	}
}

// BlogForm holds the title, author and url fields of a new blog.
type BlogForm struct {
	Form
}

// NewBlogForm creates an empty create-blog form.
func NewBlogForm() *BlogForm {
	return &BlogForm{
		Form: newForm(
			components.NewField("title:", components.KindText),
			components.NewField("author:", components.KindText),
			components.NewField("url:", components.KindText),
		),
	}
}

// Title returns the title field.
func (f *BlogForm) Title() *components.Field { return f.Fields[0] }

// Author returns the author field.
func (f *BlogForm) Author() *components.Field { return f.Fields[1] }

// URL returns the url field.
func (f *BlogForm) URL() *components.Field { return f.Fields[2] }

// ToCreateRequest converts form to create request.
func (f *BlogForm) ToCreateRequest() api.CreateBlogRequest {
	return api.CreateBlogRequest{
		Title:  strings.TrimSpace(f.Title().Value()),
		Author: strings.TrimSpace(f.Author().Value()),
		URL:    strings.TrimSpace(f.URL().Value()),
	}
}
