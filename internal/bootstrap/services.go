package bootstrap

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/cvortex/ats-ui-api/config"
	"github.com/cvortex/ats-ui-api/internal/adapters/sweeper"
	httpx "github.com/cvortex/ats-ui-api/internal/http"
	"github.com/cvortex/ats-ui-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth *service.AuthService
}

// NewServices wires services from connected adapters.
func NewServices(adapters *Adapters) ServiceContainer {
	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Upstream:    adapters.Upstream,
			Credentials: adapters.Credentials,
		}),
	}
}

// Run starts the gateway and blocks until a shutdown signal arrives or a
// background component fails.
func Run(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	adapters, err := NewAdapters(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer adapters.Close(logger)

	services := NewServices(adapters)

	server := StartHTTPServer(&HTTPServerConfig{
		Config: cfg,
		Logger: logger,
		Services: httpx.RouterServices{
			Auth:          services.Auth,
			Upstream:      adapters.Upstream,
			CookieDomain:  cfg.HTTP.CookieDomain,
			CookieSecure:  cfg.HTTP.CookieSecure,
			MaxResumeSize: cfg.Upstream.MaxResumeSize,
			Logger:        logger,
		},
	})

	sweepDone := startSweeper(ctx, adapters, cfg, logger)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	// Detach from the cancelled signal context for the drain window.
	shutdownErr := ShutdownHTTPServer(context.Background(), server, cfg.HTTP.ShutdownTimeout, logger)
	if sweepDone != nil {
		<-sweepDone
	}
	return shutdownErr
}

// startSweeper runs the expired-credential sweeper for the in-memory store.
// Redis expires credentials natively, so no sweeper runs there.
func startSweeper(ctx context.Context, adapters *Adapters, cfg *config.AppConfig, logger *slog.Logger) <-chan struct{} {
	if adapters.MemoryStore == nil {
		return nil
	}

	runner, err := sweeper.NewRunner(sweeper.RunnerOptions{
		Store:    adapters.MemoryStore,
		Interval: cfg.Session.SweepInterval,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("credential sweeper disabled", "error", err)
		return nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("credential sweeper stopped", "error", err)
		}
	}()
	return done
}
