package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cvortex/ats-ui-api/config"
	memorystore "github.com/cvortex/ats-ui-api/internal/adapters/memory"
	redisstore "github.com/cvortex/ats-ui-api/internal/adapters/redis"
	"github.com/cvortex/ats-ui-api/internal/adapters/upstream"
	"github.com/cvortex/ats-ui-api/internal/ports"
)

const redisPingTimeout = 5 * time.Second

// Adapters holds the gateway's connected boundary implementations.
type Adapters struct {
	Credentials ports.CredentialStore
	Upstream    *upstream.Client

	// MemoryStore is set only when the in-memory backend is active; the
	// sweeper needs its concrete type.
	MemoryStore *memorystore.CredentialStore

	// RedisClient is set only when the redis backend is active, for
	// shutdown cleanup.
	RedisClient redis.UniversalClient
}

// NewAdapters connects the credential store backend and the upstream API
// client from configuration.
func NewAdapters(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Adapters, error) {
	a := &Adapters{}

	switch cfg.Session.Store {
	case "memory":
		logger.InfoContext(ctx, "using in-memory credential store")
		a.MemoryStore = memorystore.NewCredentialStore(cfg.Session.DefaultTTL)
		a.Credentials = a.MemoryStore
	default:
		client, err := connectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.InfoContext(ctx, "using redis credential store", "addr", cfg.Redis.Addr)
		a.RedisClient = client
		a.Credentials = redisstore.NewCredentialStore(client, cfg.Session.DefaultTTL)
	}

	upstreamClient, err := upstream.NewClient(upstream.ClientOptions{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Logger:  logger,
	})
	if err != nil {
		a.Close(logger)
		return nil, fmt.Errorf("build upstream client: %w", err)
	}
	a.Upstream = upstreamClient

	return a, nil
}

// Close releases adapter connections. Safe to call on a partially built set.
func (a *Adapters) Close(logger *slog.Logger) {
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			logger.Error("close redis failed", "error", err)
		}
	}
}

//nolint:ireturn // UniversalClient keeps sentinel/cluster support flexible.
func connectRedis(ctx context.Context, cfg config.RedisConfig) (redis.UniversalClient, error) {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.Addr},
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			return nil, fmt.Errorf("ping redis: %w (close: %w)", err, cerr)
		}
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}
