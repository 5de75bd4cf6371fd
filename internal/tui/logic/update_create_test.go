package logic

import (
	"strings"
	"testing"
)

func fillBlogForm(h *Handler, title, author, url string) {
	typeText(h, title)
	press(h, "tab")
	typeText(h, author)
	press(h, "tab")
	typeText(h, url)
}

func TestCreateBlog(t *testing.T) {
	e := newTestEnv(t)
	e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")
	e.start(t, "mluukkai", "salainen")

	press(e.h, "n")
	if !e.h.ShowCreateForm {
		t.Fatal("expected create form shown")
	}
	fillBlogForm(e.h, "Type wars", "Robert C. Martin", "http://blog.cleancoder.com/")
	press(e.h, "enter")

	if len(e.h.Blogs) != 1 {
		t.Fatalf("expected one blog, got %d", len(e.h.Blogs))
	}
	created := e.h.Blogs[0]
	if created.ID == "" {
		t.Error("expected server assigned id")
	}
	if _, ok := e.srv.Blog(created.ID); !ok {
		t.Error("expected the local id to match the server's")
	}
	if created.User.DisplayName() != "Matti Luukkainen" {
		t.Errorf("expected owner name, got %q", created.User.DisplayName())
	}

	text := e.h.Notifier.Text()
	if !strings.Contains(text, "Type wars") || !strings.Contains(text, "Robert C. Martin") {
		t.Errorf("notification %q should name title and author", text)
	}
	if !e.h.BlogForm.IsEmpty() {
		t.Error("expected fields reset")
	}
	if e.h.ShowCreateForm {
		t.Error("expected form hidden")
	}
	if !e.h.CanDelete(created) {
		t.Error("expected creator to own the new blog")
	}
}

func TestCreateBlogFailureKeepsFields(t *testing.T) {
	e := newTestEnv(t)
	e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")
	e.start(t, "mluukkai", "salainen")

	press(e.h, "n")
	fillBlogForm(e.h, "No url", "Anon", "")
	press(e.h, "ctrl+s")

	if len(e.h.Blogs) != 0 {
		t.Errorf("expected no blog added, got %d", len(e.h.Blogs))
	}
	if !e.h.Notifier.IsError() {
		t.Error("expected error notification")
	}
	if e.h.BlogForm.Title().Value() != "No url" {
		t.Error("expected fields kept after failure")
	}
	if !e.h.ShowCreateForm {
		t.Error("expected form to stay open")
	}
}

func TestCreateCancelKeepsValues(t *testing.T) {
	e := newTestEnv(t)
	e.srv.AddUser("mluukkai", "Matti Luukkainen", "salainen")
	e.start(t, "mluukkai", "salainen")

	press(e.h, "n")
	typeText(e.h, "Draft")
	press(e.h, "esc")

	if e.h.ShowCreateForm {
		t.Error("expected form hidden on esc")
	}
	if e.h.BlogForm.Title().Value() != "Draft" {
		t.Error("expected draft kept")
	}
	if len(e.h.Blogs) != 0 {
		t.Error("cancel must not create")
	}
}
