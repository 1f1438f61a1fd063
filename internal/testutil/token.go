// Package testutil holds helpers shared across test packages.
package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MintToken signs an HS256 token with the given claims. The signature is
// irrelevant to the gateway, which never verifies it, but a properly signed
// token keeps the test inputs structurally honest.
func MintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// DirectRoleToken mints a token in the issuer's current shape: a bare
// "role" claim.
func DirectRoleToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	return MintToken(t, jwt.MapClaims{
		"sub":  "user@example.com",
		"role": role,
		"exp":  expiresAt.Unix(),
	})
}

// AuthoritiesToken mints a token in the issuer's legacy shape: an
// "authorities" list with ROLE_-prefixed entries.
func AuthoritiesToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	return MintToken(t, jwt.MapClaims{
		"sub":         "user@example.com",
		"authorities": []string{"ROLE_" + role},
		"exp":         expiresAt.Unix(),
	})
}
