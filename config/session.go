package config

import "time"

// SessionConfig controls credential storage and lifecycle.
type SessionConfig struct {
	// Store picks the credential store backend: "redis" or "memory".
	// Memory is for development and tests only; it does not survive a
	// gateway restart.
	Store string `env:"SESSION_STORE" envDefault:"redis"`

	// DefaultTTL is the credential lifetime used when the upstream token
	// carries no parseable expiry. Matches the upstream's own 24h default.
	DefaultTTL time.Duration `env:"SESSION_DEFAULT_TTL" envDefault:"24h"`

	// SweepInterval is how often the in-memory store purges expired
	// credentials. Redis handles TTL natively and ignores this.
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.Store != "memory" {
		s.Store = "redis"
	}
	if s.DefaultTTL <= 0 {
		s.DefaultTTL = 24 * time.Hour
	}
	if s.SweepInterval <= 0 {
		s.SweepInterval = time.Minute
	}
}

// RedisConfig contains Redis connection configuration for the credential
// store.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
