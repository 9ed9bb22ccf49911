// Package client talks to the remote user directory REST API.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) mirroring the remote
//     endpoints: Login, ListUsers, CreateUser, UpdateUser, DeleteUser.
//  2. Wire types in the remote's snake_case shape (User, UsersPage,
//     UserPayload, LoginResponse). IDs accept both JSON numbers and strings.
//  3. A concrete net/http implementation (see HTTPClient) whose transport
//     attaches the x-api-key service credential to every request and a
//     Bearer token whenever the TokenSource holds one.
//
// # Error Handling
//
// Failures map to sentinel errors that callers match with errors.Is:
// ErrUnavailable (network errors, timeouts, 5xx), ErrBadRequest (400),
// ErrUnauthorized (401/403), ErrNotFound (404), ErrUnexpectedStatus (other
// non-2xx) and ErrMalformedResponse (undecodable bodies).
//
// Mapping the wire shapes to local models is the job of package services.
package client
