package logic

import "github.com/bloglist/bloglist-tui/internal/api"

// Result messages. Each remote call returns exactly one of these; the handler
// applies or rolls back the matching optimistic change when it arrives.

type blogsLoadedMsg struct {
	blogs []api.Blog
	err   error
}

type sessionRestoredMsg struct {
	session *api.Session
}

type loginResultMsg struct {
	session *api.Session
	err     error
}

type blogCreatedMsg struct {
	blog *api.Blog
	req  api.CreateBlogRequest
	err  error
}

type blogLikedMsg struct {
	id       string
	previous api.Blog // copy before the optimistic like, restored on failure
	blog     *api.Blog
	err      error
}

type blogRemovedMsg struct {
	blog  api.Blog
	index int // position in the collection before removal
	err   error
}

type clipboardMsg struct {
	url string
	err error
}
