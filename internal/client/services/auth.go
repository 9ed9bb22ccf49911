// Package services maps the remote API onto the console's local models.
// This file defines the authentication service: login against the remote,
// profile normalization and local logout.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/usersconsole/internal/client/client"
	"github.com/dmitrijs2005/usersconsole/internal/client/metrics"
	"github.com/dmitrijs2005/usersconsole/internal/client/models"
)

// Sandbox fallbacks used when the login response lacks data and strict
// mode is off.
const (
	FallbackToken     = "mock-jwt-token"
	FallbackProfileID = "1"
)

// LoginResult is a successful login.
type LoginResult struct {
	Token   string
	Profile models.Profile
}

// AuthService defines authentication operations.
//
// Contract:
//   - Login: authenticate against the remote and return the session token
//     and profile. Failures are *AuthError.
//   - Logout: end the session. It has no remote side and always succeeds.
type AuthService interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context) error
}

// AuthOption customizes the auth service.
type AuthOption func(*authService)

// WithStrictProfile makes a missing token or incomplete identity a login
// failure instead of substituting fallbacks.
func WithStrictProfile(strict bool) AuthOption {
	return func(a *authService) { a.strict = strict }
}

// WithAuthMetrics records remote calls on m.
func WithAuthMetrics(m *metrics.Metrics) AuthOption {
	return func(a *authService) { a.metrics = m }
}

type authService struct {
	client  client.Client
	strict  bool
	metrics *metrics.Metrics
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client, opts ...AuthOption) AuthService {
	a := &authService{client: c}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Login sends the credentials and builds the profile from, in order, the
// response body, the token's claims and, unless strict, deterministic
// fallbacks derived from the submitted email.
func (a *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	start := time.Now()
	resp, err := a.client.Login(ctx, email, password)
	a.metrics.Observe("auth", "login", start, err)
	if err != nil {
		if errors.Is(err, client.ErrBadRequest) || errors.Is(err, client.ErrUnauthorized) {
			return LoginResult{}, &AuthError{Kind: ErrInvalidCredentials, Err: err}
		}
		return LoginResult{}, &AuthError{Kind: ErrTransportFailure, Err: err}
	}

	token := resp.Token
	if token == "" {
		if a.strict {
			return LoginResult{}, &AuthError{Kind: ErrTransportFailure, Err: ErrMissingToken}
		}
		token = FallbackToken
	}

	p := models.Profile{
		ID:          string(resp.ID),
		Email:       resp.Email,
		DisplayName: firstNonEmpty(resp.DisplayName, resp.Name),
	}
	fillFromClaims(&p, token)

	if !p.Complete() {
		if a.strict {
			return LoginResult{}, &AuthError{Kind: ErrTransportFailure, Err: ErrIncompleteProfile}
		}
		p.ID = firstNonEmpty(p.ID, FallbackProfileID)
		p.Email = firstNonEmpty(p.Email, email)
		p.DisplayName = firstNonEmpty(p.DisplayName, nameFromEmail(p.Email))
	}

	return LoginResult{Token: token, Profile: p}, nil
}

// Logout always succeeds; the remote keeps no session to end.
func (a *authService) Logout(ctx context.Context) error {
	return nil
}

// fillFromClaims fills empty profile fields from the token's claims when the
// token is a JWT. The signature is not verified: the claims only label the
// session, they grant nothing.
func fillFromClaims(p *models.Profile, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}

	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	if sub, err := claims.GetSubject(); err == nil {
		p.ID = firstNonEmpty(p.ID, sub)
	}
	p.Email = firstNonEmpty(p.Email, str("email"))
	p.DisplayName = firstNonEmpty(p.DisplayName, str("name"), str("preferred_username"))
}

// nameFromEmail turns "eve.holt@reqres.in" into "Eve Holt".
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	if len(words) == 0 {
		return email
	}
	return strings.Join(words, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
