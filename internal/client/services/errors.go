package services

import "errors"

// Error kinds. Match them with errors.Is; the kind's text is what the
// stores show to the user.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTransportFailure   = errors.New("transport failure")

	ErrFetchFailed  = errors.New("fetch failed")
	ErrCreateFailed = errors.New("create failed")
	ErrUpdateFailed = errors.New("update failed")
	ErrDeleteFailed = errors.New("delete failed")
)

// Causes attached by the services themselves.
var (
	ErrMissingToken      = errors.New("login response has no token")
	ErrIncompleteProfile = errors.New("login response has no complete profile")
	ErrInvalidPage       = errors.New("page and page size must be positive")
)

// AuthError is returned by AuthService. Kind is ErrInvalidCredentials or
// ErrTransportFailure; Err is the underlying cause.
type AuthError struct {
	Kind error
	Err  error
}

func (e *AuthError) Error() string { return e.Kind.Error() }

func (e *AuthError) Unwrap() []error { return []error{e.Kind, e.Err} }

// DirectoryError is returned by DirectoryService. Kind names the failed
// operation (ErrFetchFailed, ErrCreateFailed, ...).
type DirectoryError struct {
	Kind error
	Err  error
}

func (e *DirectoryError) Error() string { return e.Kind.Error() }

func (e *DirectoryError) Unwrap() []error { return []error{e.Kind, e.Err} }
