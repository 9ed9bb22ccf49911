// Package reqrestest runs an in-process fake of the reqres.in sandbox API for
// tests. It keeps users in memory, serves the login and users endpoints in the
// same shapes as the real sandbox and records the requests it receives.
package reqrestest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Defaults shared with the real sandbox.
const (
	APIKey   = "reqres-free-v1"
	Token    = "QpwL5tke4Pnpja7X4"
	Password = "cityslicka"
)

// User is a stored record, in wire shape.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Request is what the server saw for one call.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   map[string]any
}

type failure struct {
	status int
	raw    string
}

// Server is a running fake. Close it when done.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	users     []User
	requests  []Request
	failures  map[string][]failure
	loginBody map[string]any
	nextID    int
}

// Option configures a Server.
type Option func(*Server)

// WithUsers seeds n generated users with ids 1..n.
func WithUsers(n int) Option {
	return func(s *Server) {
		s.users = s.users[:0]
		for i := 1; i <= n; i++ {
			s.users = append(s.users, User{
				ID:        i,
				Email:     fmt.Sprintf("user%d@reqres.in", i),
				FirstName: fmt.Sprintf("First%d", i),
				LastName:  fmt.Sprintf("Last%d", i),
				Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", i),
			})
		}
	}
}

// WithLoginBody makes POST /login answer with body instead of {"token": Token}.
func WithLoginBody(body map[string]any) Option {
	return func(s *Server) { s.loginBody = body }
}

// New starts a fake seeded with the sandbox's twelve users.
func New(opts ...Option) *Server {
	s := &Server{users: seed(), failures: map[string][]failure{}, nextID: 1000}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api := e.Group("/api", s.record, s.injectFailures, requireAPIKey)
	api.POST("/login", s.login)
	api.GET("/users", s.listUsers)
	api.POST("/users", s.createUser)
	api.PUT("/users/:id", s.updateUser)
	api.DELETE("/users/:id", s.deleteUser)

	s.Server = httptest.NewServer(e)
	return s
}

// BaseURL is the API root to configure clients with.
func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// Fail makes the next call to method+path (e.g. "GET /api/users") answer with
// status and an error body.
func (s *Server) Fail(method, path string, status int) {
	s.failWith(method, path, failure{status: status})
}

// FailRaw makes the next call answer 200 with a raw, usually broken, body.
func (s *Server) FailRaw(method, path, raw string) {
	s.failWith(method, path, failure{status: http.StatusOK, raw: raw})
}

func (s *Server) failWith(method, path string, f failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + path
	s.failures[key] = append(s.failures[key], f)
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// Users returns a copy of the stored users.
func (s *Server) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]User(nil), s.users...)
}

func (s *Server) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		r := Request{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.RawQuery,
			Header: req.Header.Clone(),
		}
		if req.Body != nil {
			data, _ := io.ReadAll(req.Body)
			if len(data) > 0 {
				_ = json.Unmarshal(data, &r.Body)
			}
			req.Body = io.NopCloser(bytes.NewReader(data))
		}

		s.mu.Lock()
		s.requests = append(s.requests, r)
		s.mu.Unlock()

		return next(c)
	}
}

func (s *Server) injectFailures(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Method + " " + c.Request().URL.Path

		s.mu.Lock()
		queue := s.failures[key]
		var f *failure
		if len(queue) > 0 {
			f = &queue[0]
			s.failures[key] = queue[1:]
		}
		s.mu.Unlock()

		if f == nil {
			return next(c)
		}
		if f.raw != "" {
			return c.Blob(f.status, echo.MIMEApplicationJSON, []byte(f.raw))
		}
		return c.JSON(f.status, map[string]string{"error": http.StatusText(f.status)})
	}
}

func requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("x-api-key") != APIKey {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing API key"})
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid body"})
	}
	if body.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing email or username"})
	}
	if body.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing password"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, u := range s.users {
		if u.Email == body.Email {
			found = true
			break
		}
	}
	if !found || body.Password != Password {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user not found"})
	}
	if s.loginBody != nil {
		return c.JSON(http.StatusOK, s.loginBody)
	}
	return c.JSON(http.StatusOK, map[string]string{"token": Token})
}

func (s *Server) listUsers(c echo.Context) error {
	page := atoiDefault(c.QueryParam("page"), 1)
	perPage := atoiDefault(c.QueryParam("per_page"), 6)
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 6
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.users)
	start := (page - 1) * perPage
	data := []User{}
	if start < total {
		end := start + perPage
		if end > total {
			end = total
		}
		data = append(data, s.users[start:end]...)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"page":        page,
		"per_page":    perPage,
		"total":       total,
		"total_pages": (total + perPage - 1) / perPage,
		"data":        data,
	})
}

// createUser echoes the body with a string id, like the sandbox. The user
// is not added to the list, which the sandbox does not persist either.
func (s *Server) createUser(c echo.Context) error {
	body := map[string]any{}
	if err := decode(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid body"})
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.mu.Unlock()

	body["id"] = strconv.Itoa(id)
	body["createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	return c.JSON(http.StatusCreated, body)
}

func (s *Server) updateUser(c echo.Context) error {
	body := map[string]any{}
	if err := decode(c, &body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid body"})
	}
	body["updatedAt"] = time.Now().UTC().Format(time.RFC3339Nano)
	return c.JSON(http.StatusOK, body)
}

func (s *Server) deleteUser(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// decode reads the JSON body directly; echo's Bind would also copy path
// params into map targets.
func decode(c echo.Context, v any) error {
	return json.NewDecoder(c.Request().Body).Decode(v)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
