// Package sweeper provides a periodic cleanup loop for the in-memory
// credential store.
package sweeper

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Store is the minimal surface the sweeper needs.
type Store interface {
	Sweep() int
}

// Runner purges expired credentials on a fixed interval until its context is
// cancelled. The ticker must not outlive the runner.
type Runner struct {
	store    Store
	interval time.Duration
	logger   *slog.Logger
}

// RunnerOptions holds the dependencies for creating a Runner.
type RunnerOptions struct {
	Store    Store
	Interval time.Duration
	Logger   *slog.Logger
}

// NewRunner creates a new sweeper runner with the given options.
func NewRunner(opts RunnerOptions) (*Runner, error) {
	if opts.Store == nil {
		return nil, errors.New("credential store is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Minute
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Runner{
		store:    opts.Store,
		interval: opts.Interval,
		logger:   opts.Logger,
	}, nil
}

// Run starts the sweep loop and runs until the context is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.InfoContext(ctx, "starting credential sweeper", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "credential sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			if purged := r.store.Sweep(); purged > 0 {
				r.logger.InfoContext(ctx, "purged expired credentials", "count", purged)
			}
		}
	}
}
