package storage

import (
	"context"
	"encoding/json"

	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/logging"
)

// Fixed keys the session occupies in the Store. The token is stored twice:
// once inside the serialized user and once raw, so request code can attach
// it without deserializing the whole record.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// SessionStore persists the authenticated user between runs on top of a
// plain Store. Both keys are always written and cleared together.
type SessionStore struct {
	kv  Store
	log logging.Logger
}

func NewSessionStore(kv Store, log logging.Logger) *SessionStore {
	return &SessionStore{kv: kv, log: log}
}

// SaveUser serializes the full user (token included) under KeyUser and the
// raw token under KeyToken.
func (s *SessionStore) SaveUser(ctx context.Context, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyUser, b); err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyToken, []byte(u.Token))
}

// LoadUser returns the stored user, or (nil, nil) when no session exists.
// A malformed stored record is treated as absent: the corrupt entry is
// discarded and logged, never surfaced to the caller.
func (s *SessionStore) LoadUser(ctx context.Context) (*models.User, error) {
	b, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		s.log.Warn(ctx, "discarding malformed stored session", "err", err)
		_ = s.Clear(ctx)
		return nil, nil
	}
	return &u, nil
}

// Token returns the raw stored bearer token, or "" when absent.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	b, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Clear removes both session keys. Clearing an empty store is a no-op.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyUser); err != nil {
		return err
	}
	return s.kv.Delete(ctx, KeyToken)
}
