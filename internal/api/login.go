package api

import (
	"context"
	"fmt"
)

const loginPath = "/api/login"

// Login exchanges credentials for a session. The returned session has its
// UserID filled from the token claims when the token carries one.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
	var session Session
	if err := c.Post(ctx, loginPath, creds, &session); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if session.UserID == "" {
		// An opaque token is not an error; owner checks fall back to usernames.
		if id, err := UserIDFromToken(session.Token); err == nil {
			session.UserID = id
		}
	}

	return &session, nil
}
