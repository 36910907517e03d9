// Package session holds the single source of truth for "who is logged in".
// The Session is created once per process, restored from persistent storage
// at startup, and mutated only by the auth service and logout.
package session

import (
	"context"

	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/client/storage"
	"github.com/wip-project/wipcli/internal/logging"
)

// Session wraps at most one authenticated user. The authenticated flag is
// always derived from the current user being non-nil; it is never stored
// independently. All mutations replace the whole user value.
//
// The CLI dispatches commands on a single goroutine, so no locking is done
// here; Session is not safe for concurrent mutation.
type Session struct {
	store   *storage.SessionStore
	log     logging.Logger
	current *models.User
	loading bool
}

func NewSession(store *storage.SessionStore, log logging.Logger) *Session {
	return &Session{store: store, log: log, loading: true}
}

// Restore loads the persisted user, if any. It runs exactly once at startup;
// the loading flag stays true until the attempt completes, whatever the
// outcome, so callers can distinguish "not restored yet" from "logged out".
func (s *Session) Restore(ctx context.Context) error {
	defer func() { s.loading = false }()

	u, err := s.store.LoadUser(ctx)
	if err != nil {
		return err
	}
	if u != nil {
		s.log.Debug(ctx, "session restored", "user_id", u.ID, "email", u.Email)
	}
	s.current = u
	return nil
}

// Current returns the authenticated user, or nil.
func (s *Session) Current() *models.User {
	return s.current
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	return s.current != nil
}

// Loading reports whether the initial restore is still pending.
func (s *Session) Loading() bool {
	return s.loading
}

// SetUser replaces the session user and persists the full record. It is a
// replace, not a merge: callers must supply the complete user.
func (s *Session) SetUser(ctx context.Context, u *models.User) error {
	if err := s.store.SaveUser(ctx, u); err != nil {
		return err
	}
	s.current = u
	return nil
}

// Clear drops the in-memory user and wipes the persisted session. Safe to
// call when already logged out.
func (s *Session) Clear(ctx context.Context) error {
	s.current = nil
	return s.store.Clear(ctx)
}
