package session

import (
	"context"
	"encoding/json"
	"time"

	"minimalbites/internal/domain"
	"minimalbites/internal/kv"
)

// Mock credentials, surfaced to the end user as a demo shortcut. There
// is deliberately no hashing and no token: the session is a
// client-settable flag.
const (
	MockEmail    = "admin@minimalbites.com"
	MockPassword = "123456"

	AuthKey = "mb_auth"
	UserKey = "mb_user"

	// TTL is how long the auth flag and the profile entry live
	TTL = 24 * time.Hour

	authTruthy = "true"
)

// Store owns the mock authentication state: an auth flag and a user
// profile held as two independently-expiring entries in a key-value
// store. The two can drift apart (flag present, profile expired);
// callers must treat them as separate facts.
type Store struct {
	kv kv.Store
}

// New creates a session store over the given key-value store. In the
// HTTP layer the store is request-scoped, backed by the cookie jar.
func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Login checks the submitted credentials against the mock pair. On
// success it writes the auth flag and the serialized profile, each
// with a one-day expiry. On failure no state changes.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	if email != MockEmail || password != MockPassword {
		return false
	}

	profile := domain.UserProfile{
		Email: email,
		Name:  "Admin User",
		Role:  "admin",
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return false
	}

	if err := s.kv.Set(ctx, AuthKey, authTruthy, TTL); err != nil {
		return false
	}
	if err := s.kv.Set(ctx, UserKey, string(data), TTL); err != nil {
		return false
	}
	return true
}

// Logout expires both entries immediately
func (s *Store) Logout(ctx context.Context) {
	s.kv.Delete(ctx, AuthKey)
	s.kv.Delete(ctx, UserKey)
}

// IsAuthenticated reports whether the auth flag is present and truthy
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	value, err := s.kv.Get(ctx, AuthKey)
	return err == nil && value == authTruthy
}

// CurrentUser returns the stored profile, or nil when the entry is
// absent or malformed
func (s *Store) CurrentUser(ctx context.Context) *domain.UserProfile {
	value, err := s.kv.Get(ctx, UserKey)
	if err != nil {
		return nil
	}

	var profile domain.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return nil
	}
	return &profile
}
