// Package nimtest runs an in-process stand-in for the nim web API so that
// client code can be tested against real HTTP round trips.
//
// The fake implements the three authentication routes with the same bodies,
// status codes and auth-cookie session the nim server uses, and records
// every request it receives.
package nimtest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// CookieName is the session cookie the nim server sets on login.
const CookieName = "auth-cookie"

// Request is a snapshot of a request received by [Server].
type Request struct {
	Method  string
	Path    string
	Header  http.Header
	Body    []byte
	Cookies []*http.Cookie
}

// Server is a fake nim API backed by httptest.Server.
type Server struct {
	*httptest.Server

	users map[string]string

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a fake nim API that accepts the given username→password
// pairs. The server is closed automatically through t.Cleanup when t is
// non-nil.
func NewServer(t interface{ Cleanup(func()) }, users map[string]string) *Server {
	s := &Server{users: users}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/api/login", s.login)
	r.Get("/api/logout", s.logout)
	r.Get("/api/identity", s.identity)
	r.Get("/api", s.apiNotSpecified)
	r.Get("/api/*", s.apiNotDefined)

	s.Server = httptest.NewServer(r)
	if t != nil {
		t.Cleanup(s.Close)
	}

	return s
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:  r.Method,
			Path:    r.URL.Path,
			Header:  r.Header.Clone(),
			Body:    body,
			Cookies: r.Cookies(),
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginStatus struct {
	Identity *string `json:"identity"`
}

type errorResult struct {
	Error     string            `json:"error"`
	Parameter map[string]string `json:"parameter,omitempty"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Json deserialize error: "+err.Error(), http.StatusBadRequest)
		return
	}

	if password, ok := s.users[req.Username]; !ok || password != req.Password {
		forget(w)
		writeJSON(w, http.StatusUnauthorized, errorResult{Error: "LoginFailed"})
		return
	}

	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: req.Username, Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, loginStatus{Identity: &req.Username})
}

func (s *Server) logout(w http.ResponseWriter, _ *http.Request) {
	forget(w)
	writeJSON(w, http.StatusOK, loginStatus{})
}

func (s *Server) identity(w http.ResponseWriter, r *http.Request) {
	status := loginStatus{}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		status.Identity = &c.Value
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) apiNotSpecified(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResult{Error: "ApiNotSpecified"})
}

func (s *Server) apiNotDefined(w http.ResponseWriter, r *http.Request) {
	tail := chi.URLParam(r, "*")
	if tail == "" {
		s.apiNotSpecified(w, r)
		return
	}
	writeJSON(w, http.StatusNotFound, errorResult{Error: "ApiNotDefined", Parameter: map[string]string{"route": tail}})
}

func forget(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: "", Path: "/", MaxAge: -1})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
