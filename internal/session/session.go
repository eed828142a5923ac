package session

import (
	"context"

	"taskboard/internal/apiclient"
)

type State int

const (
	StateAnonymous State = iota
	StateChecking
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// API is the slice of the client the session needs: token installation and
// profile validation.
type API interface {
	SetToken(token string)
	Profile(ctx context.Context) (*apiclient.Profile, error)
}

// Session owns the token lifecycle: init from the store, update on login,
// clear on sign-out or validation failure. A held token is never trusted
// until a profile fetch confirms it, so a persisted token starts the
// session in the checking state.
type Session struct {
	store   TokenStore
	api     API
	state   State
	token   string
	profile *apiclient.Profile
}

func New(store TokenStore, api API) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}

	s := &Session{store: store, api: api}
	if token != "" {
		s.token = token
		s.api.SetToken(token)
		s.state = StateChecking
	}
	return s, nil
}

// Resolve settles a checking session by fetching the profile. Any failure,
// auth or transport, discards the token; expiry is only ever discovered
// here or on a later failing call, never proactively.
func (s *Session) Resolve(ctx context.Context) State {
	if s.state != StateChecking {
		return s.state
	}

	profile, err := s.api.Profile(ctx)
	if err != nil {
		s.discard()
		return s.state
	}

	s.profile = profile
	s.state = StateAuthenticated
	return s.state
}

// LoginWith installs a freshly issued token and moves to checking; the
// caller follows up with Resolve.
func (s *Session) LoginWith(token string) error {
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.profile = nil
	s.api.SetToken(token)
	s.state = StateChecking
	return nil
}

func (s *Session) SignOut() error {
	err := s.store.Clear()
	s.discardLocal()
	return err
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Profile() *apiclient.Profile {
	return s.profile
}

func (s *Session) discard() {
	_ = s.store.Clear()
	s.discardLocal()
}

func (s *Session) discardLocal() {
	s.token = ""
	s.profile = nil
	s.api.SetToken("")
	s.state = StateAnonymous
}
