package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
	"github.com/dmitrijs2005/usersconsole/internal/client/services"
	"github.com/dmitrijs2005/usersconsole/internal/client/storage"
	"github.com/dmitrijs2005/usersconsole/internal/common"
	"github.com/dmitrijs2005/usersconsole/internal/logging"
)

// ErrSessionNotSaved is the login failure reported when the token could not
// be persisted.
var ErrSessionNotSaved = errors.New("session could not be saved")

// SessionStore owns the authentication state. The token and the profile are
// persisted under common.TokenKey and common.ProfileKey; everything else
// lives only as long as the process.
//
// The session is authenticated exactly when a profile is held and the token
// is persisted.
type SessionStore struct {
	auth    services.AuthService
	storage storage.Store
	logger  logging.Logger

	mu    sync.Mutex
	state models.Session
	token string
	seq   uint64
	// version numbers published snapshots
	version uint64

	listeners listeners[models.Session]
}

// NewSessionStore builds the store and restores the persisted session.
func NewSessionStore(ctx context.Context, auth services.AuthService, st storage.Store, logger logging.Logger) *SessionStore {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &SessionStore{auth: auth, storage: st, logger: logger}
	s.Restore(ctx)
	return s
}

// Restore reloads the session from storage. A stored token means the user
// is signed in; the token is not re-validated remotely. A token without a
// readable profile is discarded along with the profile.
func (s *SessionStore) Restore(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	token, profile := s.load(ctx)
	s.token = token
	snap := s.commitLocked(sessionRestored{profile: profile})
	s.mu.Unlock()

	s.listeners.notify(snap)
}

// load must be called with s.mu held.
func (s *SessionStore) load(ctx context.Context) (string, *models.Profile) {
	token, err := s.storage.Get(ctx, common.TokenKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Warn(ctx, "failed to read stored token", "error", err)
		}
		return "", nil
	}

	raw, err := s.storage.Get(ctx, common.ProfileKey)
	if err == nil {
		var p models.Profile
		if err = json.Unmarshal([]byte(raw), &p); err == nil {
			s.logger.Debug(ctx, "session restored", "user", p.Email)
			return token, &p
		}
	}

	s.logger.Warn(ctx, "stored token without a usable profile, discarding", "error", err)
	if err := s.storage.DeleteMany(ctx, common.TokenKey, common.ProfileKey); err != nil {
		s.logger.Warn(ctx, "failed to clear stored session", "error", err)
	}
	return "", nil
}

// SubmitLogin signs in with c. On success the token and the profile are
// persisted and the session becomes authenticated. A failure keeps any
// session already held. The returned error is also reflected in
// State().Error, unless the result was superseded.
func (s *SessionStore) SubmitLogin(ctx context.Context, c models.Credentials) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	snap := s.commitLocked(loginStarted{})
	s.mu.Unlock()
	s.listeners.notify(snap)

	res, err := s.auth.Login(ctx, c.Email, c.Password)

	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.logger.Debug(ctx, "login result discarded", "email", c.Email)
		return ErrSuperseded
	}

	var ev sessionEvent
	if err == nil {
		err = s.save(ctx, res)
	}
	if err != nil {
		s.logger.Info(ctx, "login failed", "email", c.Email, "error", err)
		ev = loginFailed{message: loginMessage(err)}
	} else {
		s.logger.Info(ctx, "logged in", "email", res.Profile.Email)
		s.token = res.Token
		ev = loginSucceeded{profile: res.Profile}
	}
	snap = s.commitLocked(ev)
	s.mu.Unlock()

	s.listeners.notify(snap)
	return err
}

// save must be called with s.mu held.
func (s *SessionStore) save(ctx context.Context, res services.LoginResult) error {
	profile, err := json.Marshal(res.Profile)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}
	err = s.storage.SetMany(ctx, map[string]string{
		common.TokenKey:   res.Token,
		common.ProfileKey: string(profile),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionNotSaved, err)
	}
	return nil
}

// loginMessage is the text shown for a failed login: the error kind,
// without the cause.
func loginMessage(err error) string {
	if errors.Is(err, ErrSessionNotSaved) {
		return ErrSessionNotSaved.Error()
	}
	return err.Error()
}

// SubmitLogout ends the session. It always succeeds; a failing remote
// logout or storage is logged. A login still in flight is discarded.
func (s *SessionStore) SubmitLogout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn(ctx, "remote logout failed", "error", err)
	}

	s.mu.Lock()
	s.seq++
	if err := s.storage.DeleteMany(ctx, common.TokenKey, common.ProfileKey); err != nil {
		s.logger.Warn(ctx, "failed to clear stored session", "error", err)
	}
	s.token = ""
	snap := s.commitLocked(loggedOut{})
	s.mu.Unlock()

	s.logger.Info(ctx, "logged out")
	s.listeners.notify(snap)
}

// ClearError drops the current error message.
func (s *SessionStore) ClearError() {
	s.mu.Lock()
	snap := s.commitLocked(sessionErrorCleared{})
	s.mu.Unlock()
	s.listeners.notify(snap)
}

// Token returns the session token, or "" when signed out. It makes the store
// a client.TokenSource.
func (s *SessionStore) Token(context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// State returns a snapshot of the session.
func (s *SessionStore) State() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe calls fn with a snapshot after every state change, in commit
// order; a snapshot overtaken by a newer commit is skipped. fn must not call
// intents of this store. The returned function removes the subscription.
func (s *SessionStore) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	return s.listeners.add(fn)
}

// commitLocked applies ev and returns a snapshot to publish.
func (s *SessionStore) commitLocked(ev sessionEvent) snapshot[models.Session] {
	s.state = ev.apply(s.state)
	s.version++
	return snapshot[models.Session]{state: s.state.Clone(), version: s.version}
}
