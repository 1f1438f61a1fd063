package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token cannot be parsed as well-formed
// claims, or when no role can be resolved through any extraction strategy.
var ErrInvalidToken = errors.New("invalid token")

// roleExtractor attempts to resolve a role from a raw claims map.
// Extractors are tried in order; the first hit wins.
type roleExtractor func(claims jwt.MapClaims) (Role, bool)

// The upstream issuer changed its claim format across its lifetime: newer
// tokens carry a direct "role" claim, older ones only an "authorities" list
// with a "ROLE_" prefix. Both must keep working for already-issued tokens.
var roleExtractors = []roleExtractor{
	extractDirectRole,
	extractAuthoritiesRole,
}

// DecodeClaims parses the token's embedded claims without verifying the
// signature. No network call is made; the upstream re-validates the token on
// every API request.
func DecodeClaims(token string) (Claims, error) {
	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	role, ok := extractRole(mapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{Role: role}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// CredentialTTL derives a storage lifetime from the token's expiry claim.
// Tokens that fail to decode or carry no exp get the default; tokens already
// past their expiry get a non-positive duration.
func CredentialTTL(token string, defaultTTL time.Duration) time.Duration {
	claims, err := DecodeClaims(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return defaultTTL
	}
	return time.Until(claims.ExpiresAt)
}

// Expired reports whether the claims carry an expiry in the past.
// Claims without an exp are treated as unexpired; the upstream is the
// authority either way.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

func extractRole(claims jwt.MapClaims) (Role, bool) {
	for _, extract := range roleExtractors {
		if role, ok := extract(claims); ok {
			return role, true
		}
	}
	return "", false
}

func extractDirectRole(claims jwt.MapClaims) (Role, bool) {
	raw, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	role := Role(raw)
	return role, role.Valid()
}

func extractAuthoritiesRole(claims jwt.MapClaims) (Role, bool) {
	list, ok := claims["authorities"].([]any)
	if !ok || len(list) == 0 {
		return "", false
	}
	first, ok := list[0].(string)
	if !ok {
		return "", false
	}
	role := Role(strings.TrimPrefix(first, "ROLE_"))
	return role, role.Valid()
}
