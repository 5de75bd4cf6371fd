package logic

import (
	"errors"
	"testing"

	"github.com/bloglist/bloglist-tui/internal/api"
	"github.com/bloglist/bloglist-tui/internal/config"
)

func TestLoginSuccessStoresSession(t *testing.T) {
	e := newTestEnv(t)
	owner := e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")

	drain(e.h, e.h.Init())
	if e.h.LoggedIn() {
		t.Fatal("expected logged out before login")
	}

	e.login(t, "mluukkai", "salainen")

	if !e.h.LoggedIn() {
		t.Fatalf("expected logged in, notification %q", e.h.Notifier.Text())
	}
	if e.h.Session.UserID != owner.ID {
		t.Errorf("expected user id %s from token, got %s", owner.ID, e.h.Session.UserID)
	}

	want, err := e.srv.Token("mluukkai")
	if err != nil {
		t.Fatal(err)
	}
	stored, err := e.store.Load()
	if err != nil {
		t.Fatalf("expected stored session, got %v", err)
	}
	if stored.Token != want {
		t.Errorf("stored token = %q, want server token", stored.Token)
	}
	if e.h.Client.Token() != want {
		t.Error("expected client primed with the session token")
	}

	if e.h.LoginForm.Username().Value() != "" || e.h.LoginForm.Password().Value() != "" {
		t.Error("expected login fields reset after success")
	}
}

func TestLoginFailure(t *testing.T) {
	e := newTestEnv(t)
	e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")

	drain(e.h, e.h.Init())
	e.login(t, "mluukkai", "wrong")

	if e.h.LoggedIn() {
		t.Fatal("expected to stay logged out")
	}
	if got := e.h.Notifier.Text(); got != loginFailedText {
		t.Errorf("notification = %q, want %q", got, loginFailedText)
	}
	if !e.h.Notifier.IsError() {
		t.Error("expected error styled notification")
	}
	if _, err := e.store.Load(); !errors.Is(err, config.ErrNoSession) {
		t.Errorf("expected nothing stored, got %v", err)
	}
}

func TestLoginEmptyCredentialsReachServer(t *testing.T) {
	e := newTestEnv(t)
	drain(e.h, e.h.Init())

	press(e.h, "ctrl+s")

	var logins int
	for _, r := range e.srv.Requests() {
		if r.URL.Path == "/api/login" {
			logins++
		}
	}
	if logins != 1 {
		t.Errorf("expected one login request, got %d", logins)
	}
	if e.h.Notifier.Text() != loginFailedText {
		t.Errorf("unexpected notification %q", e.h.Notifier.Text())
	}
}

func TestLogoutClearsStore(t *testing.T) {
	e := newTestEnv(t)
	owner := e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")
	e.srv.AddBlog(api.Blog{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", User: &owner})

	e.start(t, "mluukkai", "salainen")
	press(e.h, "o")

	if e.h.LoggedIn() {
		t.Fatal("expected logged out")
	}
	if _, err := e.store.Load(); !errors.Is(err, config.ErrNoSession) {
		t.Errorf("expected store cleared, got %v", err)
	}
	if e.h.Client.Token() != "" {
		t.Error("expected client token cleared")
	}
	if len(e.h.Blogs) != 1 {
		t.Error("logout should not touch the public blog list")
	}
}

func TestInitRestoresSession(t *testing.T) {
	e := newTestEnv(t)
	e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")
	token, _ := e.srv.Token("mluukkai")

	session := &api.Session{Token: token, Username: "mluukkai", Name: "Matti Luukkainen"}
	if err := e.store.Save(session); err != nil {
		t.Fatal(err)
	}

	drain(e.h, e.h.Init())

	if !e.h.LoggedIn() {
		t.Fatal("expected session restored")
	}
	if e.h.Client.Token() != token {
		t.Error("expected client primed with restored token")
	}
}

func TestInitialFetchFailureNotifies(t *testing.T) {
	e := newTestEnv(t)
	e.srv.FailNext("GET", 500)

	drain(e.h, e.h.Init())

	if !e.h.Notifier.IsError() || e.h.Notifier.Text() == "" {
		t.Errorf("expected error notification, got %q", e.h.Notifier.Text())
	}
	if e.h.Fetching {
		t.Error("expected loading to stop")
	}
}
