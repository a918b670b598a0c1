// Package session owns the client-side authentication session: the single
// source of truth for "who is logged in", exposed to every view that needs
// to gate on it.
//
// The session is a small state machine:
//
//	Unknown ──Restore──▶ Authenticated | Unauthenticated
//	Unauthenticated ──Login──▶ Authenticating ──▶ Authenticated | Unauthenticated
//	any ──Logout──▶ Unauthenticated
//
// Authenticating is never terminal and never re-entered while an attempt is
// already in flight: at most one authentication call reaches the backend per
// Store at a time, even if the UI's submit guard is bypassed.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/barberbook/barberbook/internal/logging"
)

// Status is the session state. The zero value is StatusUnknown: a freshly
// constructed Store has not yet asked the backend whether a persisted
// session exists.
type Status int

const (
	StatusUnknown Status = iota
	StatusAuthenticating
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Credentials is the transient two-field login draft. It is never persisted
// and never logged.
type Credentials struct {
	Email    string
	Password string
}

// Identity describes the authenticated principal. Consumers receive copies;
// only the Store mutates session state.
type Identity struct {
	Name  string
	Email string
	Role  string
}

// Authenticator is the external collaborator that validates credentials and
// previously persisted tokens. Token storage is entirely its concern; the
// Store never sees a token.
type Authenticator interface {
	// Authenticate exchanges credentials for an identity.
	Authenticate(ctx context.Context, email, password string) (*Identity, error)

	// ValidateSession reports whether a previously persisted session is
	// still valid, returning its identity if so.
	ValidateSession(ctx context.Context) (*Identity, error)

	// InvalidateSession discards any persisted session. Best effort:
	// local logout proceeds regardless of the outcome.
	InvalidateSession(ctx context.Context) error
}

// ErrSessionUnresolved is reported when Login is attempted before Restore
// has resolved the initial Unknown status.
var ErrSessionUnresolved = errors.New("session status not resolved yet")

// Store is the process-wide session holder. It is an explicit, constructible
// object: consumers receive it via dependency passing, so tests can build
// independent instances with fake collaborators.
//
// Store is safe for concurrent use.
type Store struct {
	auth Authenticator
	log  logging.Logger

	restoreOnce sync.Once

	mu       sync.Mutex
	status   Status
	identity *Identity
	lastErr  error
}

// NewStore returns a Store in StatusUnknown bound to the given collaborator.
func NewStore(auth Authenticator, log logging.Logger) *Store {
	return &Store{
		auth:   auth,
		log:    log.With("component", "session"),
		status: StatusUnknown,
	}
}

// Status reports the current session status. Never fails.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Identity returns a copy of the authenticated identity. The second return
// is false whenever the status is not StatusAuthenticated.
func (s *Store) Identity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusAuthenticated || s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// LastError returns the reason behind the most recent failed login attempt,
// or nil. The boolean Login contract stays success/failure only; this is the
// optional detail a view may surface to the user.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Login drives a single authentication attempt. It returns true iff the
// collaborator accepted the credentials and the session is now authenticated.
//
// Single-flight: when an attempt is already in flight the call returns false
// immediately without contacting the collaborator and without touching
// session state. A call while already authenticated returns true without
// side effects. A call before Restore has resolved the initial status
// returns false with ErrSessionUnresolved as the last error.
//
// Every collaborator failure — bad credentials, unreachable server, timeout —
// is caught here and normalized to a transition back to Unauthenticated plus
// a false return. Nothing escapes to the caller.
func (s *Store) Login(ctx context.Context, creds Credentials) bool {
	s.mu.Lock()
	switch s.status {
	case StatusAuthenticating:
		s.mu.Unlock()
		return false
	case StatusAuthenticated:
		s.mu.Unlock()
		return true
	case StatusUnknown:
		s.lastErr = ErrSessionUnresolved
		s.mu.Unlock()
		return false
	}
	s.status = StatusAuthenticating
	s.mu.Unlock()

	identity, err := s.auth.Authenticate(ctx, creds.Email, creds.Password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || identity == nil {
		if err == nil {
			err = errors.New("authenticator returned no identity")
		}
		s.status = StatusUnauthenticated
		s.identity = nil
		s.lastErr = err
		s.log.Warn(ctx, "login failed", "email", creds.Email, "reason", err.Error())
		return false
	}

	s.identity = identity
	s.status = StatusAuthenticated
	s.lastErr = nil
	s.log.Info(ctx, "login succeeded", "email", identity.Email, "role", identity.Role)
	return true
}

// Logout discards the identity and moves to Unauthenticated. Idempotent:
// calling it while already unauthenticated is a no-op. The persisted session
// is invalidated best-effort; a collaborator failure only gets logged.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	if s.status == StatusUnauthenticated && s.identity == nil {
		s.mu.Unlock()
		return
	}
	s.identity = nil
	s.status = StatusUnauthenticated
	s.mu.Unlock()

	if err := s.auth.InvalidateSession(ctx); err != nil {
		s.log.Warn(ctx, "session invalidation failed", "reason", err.Error())
	}
	s.log.Info(ctx, "logged out")
}

// Restore resolves the initial Unknown status by asking the collaborator
// whether a previously persisted session is still valid. It runs at most
// once per Store; later calls are no-ops. Callers await it before rendering
// gated UI. Any collaborator failure collapses to Unauthenticated.
func (s *Store) Restore(ctx context.Context) {
	s.restoreOnce.Do(func() {
		identity, err := s.auth.ValidateSession(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil || identity == nil {
			s.status = StatusUnauthenticated
			s.identity = nil
			if err != nil {
				s.log.Debug(ctx, "no session to restore", "reason", err.Error())
			}
			return
		}
		s.identity = identity
		s.status = StatusAuthenticated
		s.log.Info(ctx, "session restored", "email", identity.Email)
	})
}
