package client

import "context"

// Client is the remote API contract.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ListUsers(ctx context.Context, page, perPage int) (*UsersPage, error)
	CreateUser(ctx context.Context, u UserPayload) (*User, error)
	UpdateUser(ctx context.Context, id string, u UserPayload) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

// TokenSource yields the current session token, or "" when there is none.
type TokenSource interface {
	Token(ctx context.Context) string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) string

func (f TokenFunc) Token(ctx context.Context) string { return f(ctx) }
