package redis

// Package redis provides the Redis-backed credential store for production
// use. Persistence across gateway restarts is what gives sessions their
// "survives a reload" behavior.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// CredentialStore stores one bearer token per session in Redis.
// TTL semantics come from the token's own expiry claim, falling back to a
// configured default for tokens without a usable exp.
type CredentialStore struct {
	client     redis.UniversalClient
	prefix     string
	defaultTTL time.Duration
}

// NewCredentialStore creates a Redis-backed credential store.
func NewCredentialStore(client redis.UniversalClient, defaultTTL time.Duration) *CredentialStore {
	return &CredentialStore{
		client:     client,
		prefix:     "credential:",
		defaultTTL: defaultTTL,
	}
}

// NewCredentialStoreWithPrefix creates a credential store with a custom key prefix.
func NewCredentialStoreWithPrefix(client redis.UniversalClient, defaultTTL time.Duration, prefix string) *CredentialStore {
	s := NewCredentialStore(client, defaultTTL)
	s.prefix = prefix
	return s
}

func (s *CredentialStore) Set(ctx context.Context, sessionID, token string) error {
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

	return s.client.Set(ctx, s.prefix+sessionID, token, ttl).Err()
}

func (s *CredentialStore) Get(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ports.ErrNoCredential
	}

	token, err := s.client.Get(ctx, s.prefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrNoCredential
		}
		return "", fmt.Errorf("redis get: %w", err)
	}
	return token, nil
}

func (s *CredentialStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to clear
	}
	return s.client.Del(ctx, s.prefix+sessionID).Err()
}
