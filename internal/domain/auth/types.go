package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// The string form matches the upstream ATS role claim exactly.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

// PathSegment returns the lowercase route/API prefix for the role
// (e.g., "candidate" for /candidate/profile).
func (r Role) PathSegment() string {
	switch r {
	case RoleCandidate:
		return "candidate"
	case RoleRecruiter:
		return "recruiter"
	case RoleAdmin:
		return "admin"
	}
	return ""
}

// Claims is the subset of upstream token claims the gateway cares about.
// The token itself stays opaque; signature trust is deferred entirely to the
// upstream service on every API call.
type Claims struct {
	Subject   string // upstream sets this to the user's email
	Role      Role
	ExpiresAt time.Time // zero when the token carries no usable exp
}

// Session pairs a gateway session with the credential it holds.
// It exists only as long as the credential exists and decodes successfully.
type Session struct {
	ID    string
	Token string
	Role  Role
	Email string
}
