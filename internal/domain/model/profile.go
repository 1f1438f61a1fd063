package model

import "time"

// Profile is the display/edit copy of the signed-in user, fetched fresh from
// the upstream on each protected page load. Never authoritative here.
type Profile struct {
	ID        int64      `json:"id,omitempty"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UpdateProfileRequest carries the only profile mutation the gateway
// supports: renaming.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}
