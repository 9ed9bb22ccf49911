package services

import (
	"context"

	"github.com/dmitrijs2005/usersconsole/internal/client/client"
)

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	LoginRet *client.LoginResponse
	LoginErr error

	ListRet *client.UsersPage
	ListErr error

	CreateRet *client.User
	CreateErr error

	UpdateRet *client.User
	UpdateErr error

	DeleteErr error

	LastEmail, LastPassword string
	LastPage, LastPerPage   int
	LastPayload             client.UserPayload
	LastID                  string
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*client.LoginResponse, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ListUsers(ctx context.Context, page, perPage int) (*client.UsersPage, error) {
	f.LastPage, f.LastPerPage = page, perPage
	return f.ListRet, f.ListErr
}

func (f *fakeClient) CreateUser(ctx context.Context, u client.UserPayload) (*client.User, error) {
	f.LastPayload = u
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, u client.UserPayload) (*client.User, error) {
	f.LastID, f.LastPayload = id, u
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	f.LastID = id
	return f.DeleteErr
}
