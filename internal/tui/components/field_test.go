package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFieldTypingAndReset(t *testing.T) {
	f := NewField("title", KindText)
	f.Focus()

	for _, r := range "Go" {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if f.Value() != "Go" {
		t.Fatalf("expected value Go, got %q", f.Value())
	}

	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Value() != "G" {
		t.Errorf("expected value G after backspace, got %q", f.Value())
	}

	f.Reset()
	if f.Value() != "" {
		t.Errorf("expected empty value after reset, got %q", f.Value())
	}
}

func TestFieldIgnoresInputWhenBlurred(t *testing.T) {
	f := NewField("author", KindText)
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if f.Value() != "" {
		t.Errorf("expected blurred field to ignore input, got %q", f.Value())
	}
}

func TestPasswordFieldMasksValue(t *testing.T) {
	f := NewField("password", KindPassword)
	if f.Kind() != KindPassword {
		t.Errorf("expected password kind, got %s", f.Kind())
	}
	f.SetValue("secret")
	f.Focus()

	if strings.Contains(f.View(), "secret") {
		t.Error("password should not be rendered in clear text")
	}
	if f.Value() != "secret" {
		t.Errorf("expected raw value preserved, got %q", f.Value())
	}
}

func TestFieldFocus(t *testing.T) {
	f := NewField("url", KindText)
	if f.Focused() {
		t.Error("new field should not be focused")
	}
	f.Focus()
	if !f.Focused() {
		t.Error("expected focused field")
	}
	f.Blur()
	if f.Focused() {
		t.Error("expected blurred field")
	}
}
