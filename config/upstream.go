package config

import (
	"strings"
	"time"
)

// UpstreamConfig contains configuration for the remote ATS REST API the
// gateway fronts. The upstream owns authentication, persistence, and file
// storage; the gateway only proxies.
type UpstreamConfig struct {
	// BaseURL is the upstream API root (e.g., "http://ats-api:9090/api").
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:9090/api"`

	// Timeout bounds each upstream round trip so a hung upstream does not
	// pin handler goroutines.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// MaxResumeSize is the pre-flight cap on resume uploads, in bytes.
	MaxResumeSize int64 `env:"MAX_RESUME_SIZE" envDefault:"5242880"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(u.BaseURL, "/")
	if u.Timeout <= 0 {
		u.Timeout = 30 * time.Second
	}
	if u.MaxResumeSize <= 0 {
		u.MaxResumeSize = 5 << 20
	}
}
