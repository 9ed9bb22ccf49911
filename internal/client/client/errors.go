package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrBadRequest        = errors.New("bad request")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotFound          = errors.New("not found")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
)

// statusError maps a non-2xx status to a sentinel, keeping the code in the message.
func statusError(code int) error {
	var base error
	switch {
	case code == http.StatusBadRequest:
		base = ErrBadRequest
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		base = ErrUnauthorized
	case code == http.StatusNotFound:
		base = ErrNotFound
	case code >= 500:
		base = ErrUnavailable
	default:
		base = ErrUnexpectedStatus
	}
	return fmt.Errorf("%w: status %d", base, code)
}
