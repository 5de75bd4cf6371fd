package logic

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bloglist/bloglist-tui/internal/api"
)

const loginFailedText = "wrong username or password"

// handleLoginKeyMsg handles input while logged out.
func (h *Handler) handleLoginKeyMsg(msg tea.KeyMsg) tea.Cmd {
	form := h.LoginForm
	switch msg.String() {
	case h.Keymap.NextField.Key, "down":
		return form.NextField()
	case h.Keymap.PrevField.Key, "up":
		return form.PrevField()
	case h.Keymap.Submit.Key:
		return h.submitLogin()
	case "enter":
		if form.FocusIndex < len(form.Fields)-1 {
			return form.NextField()
		}
		return h.submitLogin()
	case "esc":
		return nil
	}
	return form.Update(msg)
}

// submitLogin sends the typed credentials as they are; empty values still
// reach the server.
func (h *Handler) submitLogin() tea.Cmd {
	if h.LoggingIn {
		return nil
	}
	creds := h.LoginForm.Credentials()
	h.LoggingIn = true

	client := h.Client
	return tea.Batch(h.Spinner.Tick, func() tea.Msg {
		ctx, cancel := h.requestContext()
		defer cancel()
		session, err := client.Login(ctx, creds)
		return loginResultMsg{session: session, err: err}
	})
}

func (h *Handler) handleLoginResult(msg loginResultMsg) tea.Cmd {
	h.LoggingIn = false
	if msg.err != nil {
		h.Logger.Info("login failed", "error", msg.err)
		return h.notify(loginFailedText, true)
	}

	if h.Store != nil {
		if err := h.Store.Save(msg.session); err != nil {
			h.Logger.Error("failed to store session", "error", err)
		}
	}
	h.setSession(msg.session)
	h.LoginForm.Reset()
	h.Logger.Info("logged in", "username", msg.session.Username, "user_id", msg.session.UserID)
	return nil
}

// setSession switches to the logged-in tree and primes the client token.
func (h *Handler) setSession(session *api.Session) {
	h.Session = session
	h.Client.SetToken(session.Token)
	h.ConfirmDelete = nil
	h.ShowCreateForm = false
	h.ShowHelp = false
}

// logout forgets the session in memory and in the store. The blog list is
// left as is; it is public.
func (h *Handler) logout() tea.Cmd {
	if h.Store != nil {
		if err := h.Store.Clear(); err != nil {
			h.Logger.Error("failed to clear session", "error", err)
		}
	}
	if h.Session != nil {
		h.Logger.Info("logged out", "username", h.Session.Username)
	}

	h.Session = nil
	h.Client.SetToken("")
	h.ConfirmDelete = nil
	h.ShowCreateForm = false
	h.ShowHelp = false
	h.PendingLikes = make(map[string]bool)
	h.PendingRemoves = make(map[string]bool)
	h.KeyState.WaitingG = false
	return h.LoginForm.Focus(0)
}
