package components

import (
	"strings"
	"testing"
	"time"
)

func TestNotifierEmptyRendersNothing(t *testing.T) {
	n := NewNotifier(time.Second)
	if n.View() != "" {
		t.Errorf("expected empty view, got %q", n.View())
	}
}

func TestNotifierShowAndExpire(t *testing.T) {
	n := NewNotifier(time.Second)

	cmd := n.Show("added new blog: T by A", false)
	if cmd == nil {
		t.Fatal("expected an expiry command")
	}
	if !strings.Contains(n.View(), "added new blog: T by A") {
		t.Errorf("expected message in view, got %q", n.View())
	}
	if n.IsError() {
		t.Error("expected success notification")
	}

	n.Update(NotificationExpiredMsg{Seq: n.Seq()})
	if n.Text() != "" || n.View() != "" {
		t.Errorf("expected cleared notification, got %q", n.Text())
	}
}

// A message shown at T and another at T+1s: the first clear (due at T+5s)
// must not blank the second, which stays until its own clear at T+6s.
func TestNotifierLaterMessageSurvivesEarlierClear(t *testing.T) {
	n := NewNotifier(5 * time.Second)

	n.Show("first", false)
	first := n.Seq()
	n.Show("wrong username or password", true)
	second := n.Seq()

	n.Update(NotificationExpiredMsg{Seq: first})
	if n.Text() != "wrong username or password" || !n.IsError() {
		t.Fatalf("stale expiry cleared the newer message: %q", n.Text())
	}

	n.Update(NotificationExpiredMsg{Seq: second})
	if n.Text() != "" {
		t.Errorf("expected the latest expiry to clear, got %q", n.Text())
	}
}

func TestNotifierExpiryCommandCarriesSeq(t *testing.T) {
	n := NewNotifier(time.Millisecond)
	cmd := n.Show("hello", false)

	msg, ok := cmd().(NotificationExpiredMsg)
	if !ok {
		t.Fatalf("expected NotificationExpiredMsg, got %T", msg)
	}
	if msg.Seq != n.Seq() {
		t.Errorf("expected seq %d, got %d", n.Seq(), msg.Seq)
	}
}

func TestNotifierDefaultDuration(t *testing.T) {
	if d := NewNotifier(0).Duration(); d != DefaultNotificationDuration {
		t.Errorf("expected %v, got %v", DefaultNotificationDuration, d)
	}
}
