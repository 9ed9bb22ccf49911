// Package common contains shared constants and sentinel errors used across
// the console packages.
package common

// Header names attached to every outbound request.
const (
	// AuthorizationHeaderName carries "Bearer <token>" when a session token is held.
	AuthorizationHeaderName = "Authorization"
	// APIKeyHeaderName carries the service-identifying credential.
	APIKeyHeaderName = "x-api-key"
)

// Persistent storage keys of the session.
const (
	TokenKey   = "authToken"
	ProfileKey = "user"
)
