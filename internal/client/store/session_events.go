package store

import "github.com/dmitrijs2005/usersconsole/internal/client/models"

// sessionEvent is a pure transition of the session state.
type sessionEvent interface {
	apply(s models.Session) models.Session
}

type loginStarted struct{}

func (loginStarted) apply(s models.Session) models.Session {
	s.Loading = true
	s.Error = ""
	return s
}

type loginSucceeded struct {
	profile models.Profile
}

func (e loginSucceeded) apply(s models.Session) models.Session {
	p := e.profile
	s.IsAuthenticated = true
	s.User = &p
	s.Loading = false
	s.Error = ""
	return s
}

// loginFailed leaves any prior session in place; only the pending flag and
// the error change.
type loginFailed struct {
	message string
}

func (e loginFailed) apply(s models.Session) models.Session {
	s.Loading = false
	s.Error = e.message
	return s
}

// loggedOut also ends a pending login.
type loggedOut struct{}

func (loggedOut) apply(s models.Session) models.Session {
	s.IsAuthenticated = false
	s.User = nil
	s.Loading = false
	return s
}

type sessionRestored struct {
	profile *models.Profile
}

func (e sessionRestored) apply(s models.Session) models.Session {
	if e.profile == nil {
		return loggedOut{}.apply(s)
	}
	p := *e.profile
	s.IsAuthenticated = true
	s.User = &p
	return s
}

type sessionErrorCleared struct{}

func (sessionErrorCleared) apply(s models.Session) models.Session {
	s.Error = ""
	return s
}
