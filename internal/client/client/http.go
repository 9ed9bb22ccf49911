package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/usersconsole/internal/common"
)

// authTransport decorates every request with the service credential and,
// when a session token is held, the Bearer authorization header.
type authTransport struct {
	base   http.RoundTripper
	apiKey string
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(common.APIKeyHeaderName, t.apiKey)
	req.Header.Del(common.AuthorizationHeaderName)
	if t.tokens != nil {
		if token := t.tokens.Token(req.Context()); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
		}
	}
	return t.base.RoundTrip(req)
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// Option customizes an HTTPClient.
type Option func(*options)

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
}

// WithTimeout bounds every request; zero means no client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithTransport replaces the underlying round tripper (tests, proxies).
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// NewHTTPClient builds a client for the API rooted at baseURL.
func NewHTTPClient(baseURL, apiKey string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	o := options{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   o.timeout,
			Transport: &authTransport{base: o.transport, apiKey: apiKey, tokens: tokens},
		},
	}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context, page, perPage int) (*UsersPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))

	var resp UsersPage
	if err := c.do(ctx, http.MethodGet, "/users?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrMalformedResponse)
	}
	return &resp, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, u UserPayload) (*User, error) {
	var resp User
	if err := c.do(ctx, http.MethodPost, "/users", u, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, u UserPayload) (*User, error) {
	var resp User
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id), u, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" {
		resp.ID = ID(id)
	}
	return &resp, nil
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

// do sends body as JSON and decodes a non-empty 2xx response into out.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return statusError(resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
