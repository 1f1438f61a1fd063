package memory

// Package memory provides an in-process credential store for development and
// tests. Credentials do not survive a gateway restart; production uses the
// Redis adapter.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

type entry struct {
	token     string
	expiresAt time.Time
}

// CredentialStore is a mutex-guarded map of session ID to token.
type CredentialStore struct {
	mu         sync.RWMutex
	entries    map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

// NewCredentialStore creates an in-memory credential store.
func NewCredentialStore(defaultTTL time.Duration) *CredentialStore {
	return &CredentialStore{
		entries:    make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (s *CredentialStore) Set(_ context.Context, sessionID, token string) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}

	ttl := domainauth.CredentialTTL(token, s.defaultTTL)
	if ttl <= 0 {
		return errors.New("credential is expired")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = entry{token: token, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *CredentialStore) Get(_ context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ports.ErrNoCredential
	}

	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || s.now().After(e.expiresAt) {
		return "", ports.ErrNoCredential
	}
	return e.token, nil
}

func (s *CredentialStore) Clear(_ context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to clear
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// Sweep removes expired entries and returns how many were purged.
// The sweeper runner calls this on a fixed interval; Redis does the
// equivalent natively through key TTLs.
func (s *CredentialStore) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			purged++
		}
	}
	return purged
}

// Len reports the number of stored credentials, expired or not.
func (s *CredentialStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
