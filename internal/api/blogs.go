package api

import (
	"context"
	"fmt"
)

const blogsPath = "/api/blogs"

// GetBlogs returns the full blog collection.
func (c *Client) GetBlogs(ctx context.Context) ([]Blog, error) {
	blogs := make([]Blog, 0)
	if err := c.Get(ctx, blogsPath, &blogs); err != nil {
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}
	return blogs, nil
}

// CreateBlog creates a new blog owned by the session user.
func (c *Client) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	var blog Blog
	if err := c.Post(ctx, blogsPath, req, &blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return &blog, nil
}

// UpdateBlog replaces the mutable fields of a blog.
func (c *Client) UpdateBlog(ctx context.Context, id string, req UpdateBlogRequest) (*Blog, error) {
	var blog Blog
	if err := c.Put(ctx, blogsPath+"/"+id, req, &blog); err != nil {
		return nil, fmt.Errorf("failed to update blog %s: %w", id, err)
	}
	return &blog, nil
}

// DeleteBlog deletes a blog.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	if err := c.Delete(ctx, blogsPath+"/"+id); err != nil {
		return fmt.Errorf("failed to delete blog %s: %w", id, err)
	}
	return nil
}
