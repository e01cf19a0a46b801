package auth

import (
	"context"
	"time"

	"theboar/internal/kv"
)

const revokedSessionKeyPrefix = "revoked_session:"

// SessionStore records revoked session token IDs.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps revoked session IDs in Redis until the token would have
// expired anyway.
type TokenStore struct {
	kv *kv.Client
}

var _ SessionStore = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(client *kv.Client) *TokenStore {
	return &TokenStore{kv: client}
}

// Revoke marks the session as logged out.
func (s *TokenStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.kv.Mark(ctx, revokedSessionKeyPrefix+tokenID, ttl)
	return nil
}

// IsRevoked checks the denylist. Redis errors read as not revoked.
func (s *TokenStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.kv.Marked(ctx, revokedSessionKeyPrefix+tokenID), nil
}
