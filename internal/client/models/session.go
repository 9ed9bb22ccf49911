package models

import "strings"

// Profile identifies the signed-in user.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
}

// Complete reports whether every identity field is set.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.ID) != "" && strings.TrimSpace(p.Email) != "" && strings.TrimSpace(p.DisplayName) != ""
}

// Session is the authentication state observed by the view.
// Error is empty when there is no error to show.
type Session struct {
	IsAuthenticated bool
	User            *Profile
	Loading         bool
	Error           string
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// Credentials is what the login form submits. RememberMe is carried for the
// view; the session is persisted either way.
type Credentials struct {
	Email      string
	Password   string
	RememberMe bool
}
