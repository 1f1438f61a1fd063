// Package ports defines interfaces (hexagonal ports) for the gateway's
// boundaries. Implementations live in internal/adapters; orchestration in
// internal/service.
package ports

import "context"

// CredentialStore persists the one bearer token each session holds.
// It is the only cross-page shared mutable resource: read on every guarded
// navigation and every outgoing request, written only by login success and
// by the unauthorized-response handler.
type CredentialStore interface {
	// Set stores the token for a session, replacing any prior value.
	Set(ctx context.Context, sessionID, token string) error
	// Get returns the current token, or ErrNoCredential when none is stored.
	Get(ctx context.Context, sessionID string) (string, error)
	// Clear removes the token. Clearing an absent credential is a no-op.
	Clear(ctx context.Context, sessionID string) error
}

// ErrNoCredential is returned by CredentialStore.Get when no token is stored
// for the session.
type noCredentialError struct{}

func (noCredentialError) Error() string { return "no credential stored" }

var ErrNoCredential error = noCredentialError{}
