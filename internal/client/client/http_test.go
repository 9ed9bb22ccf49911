package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usersconsole/internal/client/reqrestest"
)

func newClient(t *testing.T, srv *reqrestest.Server, token string) *HTTPClient {
	t.Helper()
	c, err := NewHTTPClient(srv.BaseURL(), reqrestest.APIKey, TokenFunc(func(context.Context) string { return token }), WithTimeout(2*time.Second))
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewHTTPClient("reqres.in/api", "k", nil)
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()
	c := newClient(t, srv, "")

	resp, err := c.Login(context.Background(), "eve.holt@reqres.in", reqrestest.Password)
	require.NoError(t, err)
	assert.Equal(t, reqrestest.Token, resp.Token)

	req := srv.LastRequest()
	assert.Equal(t, "/api/login", req.Path)
	assert.Equal(t, "eve.holt@reqres.in", req.Body["email"])
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	_, err = c.Login(context.Background(), "eve.holt@reqres.in", "")
	require.ErrorIs(t, err, ErrBadRequest)
}

func TestHeaders_APIKeyAlwaysBearerWhenToken(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()

	_, err := newClient(t, srv, "").ListUsers(context.Background(), 1, 6)
	require.NoError(t, err)
	h := srv.LastRequest().Header
	assert.Equal(t, reqrestest.APIKey, h.Get("x-api-key"))
	assert.Empty(t, h.Get("Authorization"))

	_, err = newClient(t, srv, "tok").ListUsers(context.Background(), 1, 6)
	require.NoError(t, err)
	h = srv.LastRequest().Header
	assert.Equal(t, reqrestest.APIKey, h.Get("x-api-key"))
	assert.Equal(t, "Bearer tok", h.Get("Authorization"))
}

func TestWrongAPIKey_Unauthorized(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()

	c, err := NewHTTPClient(srv.BaseURL(), "wrong", nil)
	require.NoError(t, err)

	_, err = c.ListUsers(context.Background(), 1, 6)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestListUsers(t *testing.T) {
	srv := reqrestest.New(reqrestest.WithUsers(25))
	defer srv.Close()
	c := newClient(t, srv, "")

	page, err := c.ListUsers(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Data, 10)
	assert.Equal(t, ID("11"), page.Data[0].ID)
	assert.Equal(t, "First11", page.Data[0].FirstName)
	assert.Equal(t, "page=2&per_page=10", srv.LastRequest().Query)
}

func TestListUsers_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *reqrestest.Server)
		want  error
	}{
		{name: "server error", setup: func(s *reqrestest.Server) { s.Fail(http.MethodGet, "/api/users", http.StatusInternalServerError) }, want: ErrUnavailable},
		{name: "not found", setup: func(s *reqrestest.Server) { s.Fail(http.MethodGet, "/api/users", http.StatusNotFound) }, want: ErrNotFound},
		{name: "teapot", setup: func(s *reqrestest.Server) { s.Fail(http.MethodGet, "/api/users", http.StatusTeapot) }, want: ErrUnexpectedStatus},
		{name: "broken json", setup: func(s *reqrestest.Server) { s.FailRaw(http.MethodGet, "/api/users", `{"data": [`) }, want: ErrMalformedResponse},
		{name: "missing data", setup: func(s *reqrestest.Server) { s.FailRaw(http.MethodGet, "/api/users", `{"page": 1}`) }, want: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := reqrestest.New()
			defer srv.Close()
			tt.setup(srv)

			_, err := newClient(t, srv, "").ListUsers(context.Background(), 1, 6)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerGone_Unavailable(t *testing.T) {
	srv := reqrestest.New()
	c := newClient(t, srv, "")
	srv.Close()

	_, err := c.ListUsers(context.Background(), 1, 6)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateUser_StringID(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()
	c := newClient(t, srv, "")

	first, last := "Anna", "Smith"
	u, err := c.CreateUser(context.Background(), UserPayload{FirstName: &first, LastName: &last})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Anna", u.FirstName)
	assert.Equal(t, map[string]any{"first_name": "Anna", "last_name": "Smith"}, srv.LastRequest().Body)
}

func TestUpdateUser_OmitsNilFields(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()
	c := newClient(t, srv, "")

	empty := ""
	u, err := c.UpdateUser(context.Background(), "2", UserPayload{Avatar: &empty})
	require.NoError(t, err)

	assert.Equal(t, ID("2"), u.ID, "id falls back to the path id")
	req := srv.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/users/2", req.Path)
	assert.Equal(t, map[string]any{"avatar": ""}, req.Body)
}

func TestDeleteUser(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()
	c := newClient(t, srv, "")

	require.NoError(t, c.DeleteUser(context.Background(), "3"))
	assert.Equal(t, "/api/users/3", srv.LastRequest().Path)

	srv.Fail(http.MethodDelete, "/api/users/3", http.StatusBadGateway)
	require.ErrorIs(t, c.DeleteUser(context.Background(), "3"), ErrUnavailable)
}

func TestContextCanceled(t *testing.T) {
	srv := reqrestest.New()
	defer srv.Close()
	c := newClient(t, srv, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListUsers(ctx, 1, 6)
	require.ErrorIs(t, err, context.Canceled)
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{in: `7`, want: "7"},
		{in: `"abc"`, want: "abc"},
		{in: `null`, want: ""},
		{in: `12345678901234567890`, want: "12345678901234567890"},
	}
	for _, tt := range tests {
		var id ID
		require.NoError(t, json.Unmarshal([]byte(tt.in), &id), tt.in)
		assert.Equal(t, tt.want, id)
	}

	var id ID
	require.Error(t, json.Unmarshal([]byte(`{}`), &id))
}
