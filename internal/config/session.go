package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"

	"github.com/bloglist/bloglist-tui/internal/api"
)

const (
	keyringService = appName

	// SessionKey is the fixed key the logged-in user is stored under.
	SessionKey = "loggedBlogappUser"
)

// ErrNoSession is returned when no session is stored.
var ErrNoSession = errors.New("no stored session")

// SessionStore persists the logged-in user across runs.
type SessionStore interface {
	// Load returns the stored session or ErrNoSession.
	Load() (*api.Session, error)
	Save(session *api.Session) error
	Clear() error
}

// LocalSessionStore keeps the session in the system keyring, falling back to
// a 0600 file in dir when no keyring is available.
type LocalSessionStore struct {
	dir string
}

var _ SessionStore = (*LocalSessionStore)(nil)

// NewSessionStore creates a store whose fallback file lives in dir.
func NewSessionStore(dir string) *LocalSessionStore {
	return &LocalSessionStore{dir: dir}
}

func (s *LocalSessionStore) path() string {
	return filepath.Join(s.dir, SessionKey+".json")
}

// Load reads the session. Priority: 1. System keyring, 2. Session file.
// A corrupt entry is cleared and reported as ErrNoSession.
func (s *LocalSessionStore) Load() (*api.Session, error) {
	data, err := s.read()
	if err != nil {
		return nil, err
	}

	var session api.Session
	if err := json.Unmarshal(data, &session); err != nil || session.Token == "" {
		_ = s.Clear()
		return nil, ErrNoSession
	}

	if session.UserID == "" {
		if id, err := api.UserIDFromToken(session.Token); err == nil {
			session.UserID = id
		}
	}

	return &session, nil
}

func (s *LocalSessionStore) read() ([]byte, error) {
	if v, err := keyring.Get(keyringService, SessionKey); err == nil && v != "" {
		return []byte(v), nil
	}

	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSession
	}
	return data, nil
}

// Save stores the session as JSON.
// Tries system keyring first, falls back to the session file.
func (s *LocalSessionStore) Save(session *api.Session) error {
	if session == nil || session.Token == "" {
		return fmt.Errorf("session token cannot be empty")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := keyring.Set(keyringService, SessionKey, string(data)); err == nil {
		// Drop any stale copy left by an earlier keyring-less run.
		if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove session file: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the stored session from all locations.
func (s *LocalSessionStore) Clear() error {
	// Try to delete from keyring (ignore errors)
	_ = keyring.Delete(keyringService, SessionKey)

	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}
