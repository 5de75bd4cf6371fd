// Package api provides a client for the bloglist REST API.
package api

import (
	"encoding/json"
	"fmt"
)

// Owner is the user a blog belongs to.
// The API returns either the populated user object or just its id.
type Owner struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
}

// UnmarshalJSON accepts both `"<id>"` and `{"id": ..., "name": ...}`.
func (o *Owner) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*o = Owner{ID: id}
		return nil
	}

	type plain Owner
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid blog owner: %w", err)
	}
	*o = Owner(p)
	return nil
}

// Populated reports whether the owner carries more than its id.
func (o *Owner) Populated() bool {
	return o != nil && (o.Name != "" || o.Username != "")
}

// DisplayName returns the best available name for the owner.
func (o *Owner) DisplayName() string {
	switch {
	case o == nil:
		return "unknown"
	case o.Name != "":
		return o.Name
	case o.Username != "":
		return o.Username
	default:
		return "unknown"
	}
}

// Blog represents a single blog post.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   *Owner `json:"user,omitempty"`
}

// OwnerID returns the id of the blog's owner, or "" when unknown.
func (b *Blog) OwnerID() string {
	if b.User == nil {
		return ""
	}
	return b.User.ID
}

// Credentials is the request body for logging in.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateBlogRequest represents the request body for creating a blog.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// UpdateBlogRequest represents the request body for updating a blog.
// The owner is sent as a bare id.
type UpdateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   string `json:"user,omitempty"`
}

// NewUpdateRequest builds an update request from a blog, reducing the
// embedded owner to its id.
func NewUpdateRequest(b Blog) UpdateBlogRequest {
	return UpdateBlogRequest{
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
		User:   b.OwnerID(),
	}
}
