package api

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated user returned by the login endpoint.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`

	// UserID is decoded from the token claims; the login endpoint does not
	// return it directly.
	UserID string `json:"id,omitempty"`
}

// UserIDFromToken extracts the "id" claim from a bearer token without
// verifying its signature. Verification is the server's job; the client only
// needs the id to decide which blogs it owns.
func UserIDFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	switch id := claims["id"].(type) {
	case string:
		return id, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprint(id), nil
	}
}

// Owns reports whether the session user owns the blog.
// Ownership is decided by user id; when either side lacks an id the
// usernames are compared instead. Display names are never compared since
// they are not unique.
func (s *Session) Owns(b Blog) bool {
	if s == nil || b.User == nil {
		return false
	}
	if s.UserID != "" && b.User.ID != "" {
		return s.UserID == b.User.ID
	}
	if s.Username != "" && b.User.Username != "" {
		return s.Username == b.User.Username
	}
	return false
}
