// Package apitest provides an in-memory bloglist backend for tests.
package apitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bloglist/bloglist-tui/internal/api"
)

var errInvalidToken = errors.New("token missing or invalid")

type account struct {
	owner    api.Owner
	password string
}

// Server is a fake bloglist backend. It mirrors the real backend's routes and
// response shapes: list and create return the populated owner, update returns
// the owner as a bare id.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	secret   []byte
	accounts map[string]account
	blogs    []api.Blog
	failures map[string]int
	requests []*http.Request
}

// NewServer starts a fake backend. Call Close when done.
func NewServer() *Server {
	s := &Server{
		secret:   []byte("apitest-secret"),
		accounts: make(map[string]account),
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.injectFailures)
	r.Post("/api/login", s.handleLogin)
	r.Route("/api/blogs", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Put("/{id}", s.handleUpdate)
		r.Delete("/{id}", s.handleDelete)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// AddUser registers a user and returns its owner reference.
func (s *Server) AddUser(username, name, password string) api.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := api.Owner{ID: uuid.NewString(), Name: name, Username: username}
	s.accounts[username] = account{owner: owner, password: password}
	return owner
}

// AddBlog stores a blog, assigning an id when it has none.
func (s *Server) AddBlog(b api.Blog) api.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.blogs = append(s.blogs, b)
	return b
}

// Blogs returns a copy of the stored blogs.
func (s *Server) Blogs() []api.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]api.Blog(nil), s.blogs...)
}

// Blog returns the stored blog with the given id.
func (s *Server) Blog(id string) (api.Blog, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return api.Blog{}, false
	}
	return s.blogs[i], true
}

// FailNext makes the next request with the given method answer with status.
func (s *Server) FailNext(method string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method] = status
}

// Requests returns the requests received so far.
func (s *Server) Requests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*http.Request(nil), s.requests...)
}

// Token issues a token for a registered user, as the login route would.
func (s *Server) Token(username string) (string, error) {
	s.mu.Lock()
	acc, ok := s.accounts[username]
	s.mu.Unlock()
	if !ok {
		return "", errors.New("unknown user")
	}
	return s.sign(acc.owner)
}

func (s *Server) sign(owner api.Owner) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": owner.Username,
		"id":       owner.ID,
	})
	return token.SignedString(s.secret)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status, ok := s.failures[r.Method]
		delete(s.failures, r.Method)
		s.mu.Unlock()

		if ok {
			writeError(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the bearer token to an account owner.
func (s *Server) authenticate(r *http.Request) (api.Owner, error) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || raw == "" {
		return api.Owner{}, errInvalidToken
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return api.Owner{}, errInvalidToken
	}

	username, _ := claims["username"].(string)
	s.mu.Lock()
	acc, ok := s.accounts[username]
	s.mu.Unlock()
	if !ok {
		return api.Owner{}, errInvalidToken
	}
	return acc.owner, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[creds.Username]
	s.mu.Unlock()
	if !ok || acc.password != creds.Password {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := s.sign(acc.owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": acc.owner.Username,
		"name":     acc.owner.Name,
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Blogs())
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	owner, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	var req api.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}
	if req.Title == "" || req.URL == "" {
		writeError(w, http.StatusBadRequest, "title and url are required")
		return
	}

	blog := s.AddBlog(api.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		User:   &owner,
	})
	writeJSON(w, http.StatusCreated, blog)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req api.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request")
		return
	}

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "blog not found")
		return
	}
	b := &s.blogs[i]
	b.Title, b.Author, b.URL, b.Likes = req.Title, req.Author, req.URL, req.Likes
	updated := *b
	s.mu.Unlock()

	if updated.User != nil {
		updated.User = &api.Owner{ID: updated.User.ID}
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	owner, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if s.blogs[i].OwnerID() != owner.ID {
		writeError(w, http.StatusForbidden, "only the creator can delete a blog")
		return
	}
	s.blogs = append(s.blogs[:i:i], s.blogs[i+1:]...)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) indexOf(id string) int {
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			return i
		}
	}
	return -1
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
