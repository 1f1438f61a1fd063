package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/cvortex/ats-ui-api/internal/domain/auth"
	"github.com/cvortex/ats-ui-api/internal/domain/model"
	apperrors "github.com/cvortex/ats-ui-api/internal/errors"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Upstream    ports.Upstream
	Credentials ports.CredentialStore
}

// AuthService orchestrates the credential lifecycle: written on login
// success, read on every guarded navigation, cleared on logout or when the
// credential turns out to be unusable.
type AuthService struct {
	upstream    ports.Upstream
	credentials ports.CredentialStore
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		upstream:    opts.Upstream,
		credentials: opts.Credentials,
	}
}

// LoginResult contains the session issued for a successful login.
type LoginResult struct {
	Session domainauth.Session
}

// Login exchanges credentials upstream, decodes the issued token's role
// claim, and persists the credential under a fresh session ID.
func (s *AuthService) Login(ctx context.Context, in model.LoginRequest) (*LoginResult, error) {
	if in.Email == "" {
		return nil, apperrors.Validation("Email is required")
	}
	if in.Password == "" {
		return nil, apperrors.Validation("Password is required")
	}

	token, err := s.upstream.Login(ctx, in)
	if err != nil {
		return nil, err
	}

	claims, err := domainauth.DecodeClaims(token)
	if err != nil {
		// The upstream issued a token the gateway cannot read.
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidToken, "issued token is not decodable")
	}

	sessionID := generateSessionID()
	if saveErr := s.credentials.Set(ctx, sessionID, token); saveErr != nil {
		return nil, fmt.Errorf("store credential: %w", saveErr)
	}

	return &LoginResult{
		Session: domainauth.Session{
			ID:    sessionID,
			Token: token,
			Role:  claims.Role,
			Email: claims.Subject,
		},
	}, nil
}

// Register creates an account upstream. Validation failures (including
// field-level ones) pass through untouched for the form to distribute.
func (s *AuthService) Register(ctx context.Context, in model.RegisterRequest) error {
	if in.Role != string(domainauth.RoleCandidate) && in.Role != string(domainauth.RoleRecruiter) {
		return apperrors.ValidationFields("Validation failed", map[string]string{
			"role": "Role must be CANDIDATE or RECRUITER",
		})
	}
	return s.upstream.Register(ctx, in)
}

// Resolve loads and decodes the session's credential.
// A stored token that no longer decodes, or whose expiry has passed, is
// cleared on the spot and reported as ErrInvalidToken; a missing credential
// reports ports.ErrNoCredential.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, ports.ErrNoCredential
	}

	token, err := s.credentials.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	claims, err := domainauth.DecodeClaims(token)
	if err != nil {
		return nil, s.discardCredential(ctx, sessionID)
	}
	// The store's TTL normally evicts these, but a stored token can outlive
	// its exp claim when the TTL fell back to the default.
	if claims.Expired(time.Now()) {
		return nil, s.discardCredential(ctx, sessionID)
	}

	return &domainauth.Session{
		ID:    sessionID,
		Token: token,
		Role:  claims.Role,
		Email: claims.Subject,
	}, nil
}

// discardCredential clears an unusable credential and reports
// ErrInvalidToken, folding in any clear failure.
func (s *AuthService) discardCredential(ctx context.Context, sessionID string) error {
	if clearErr := s.credentials.Clear(ctx, sessionID); clearErr != nil {
		return errors.Join(domainauth.ErrInvalidToken, fmt.Errorf("clear credential: %w", clearErr))
	}
	return domainauth.ErrInvalidToken
}

// Logout removes the session's credential. Absent credentials are a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to log out
	}
	if err := s.credentials.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Invalidate is the unauthorized-response handler's path: the upstream
// declared the credential unacceptable, so the session dies with it.
func (s *AuthService) Invalidate(ctx context.Context, sessionID string) error {
	return s.Logout(ctx, sessionID)
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
