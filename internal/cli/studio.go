package cli

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	backend "github.com/redis/go-redis/v9"

	"github.com/easel-ai/easel"
	"github.com/easel-ai/easel/internal/logging"
	"github.com/easel-ai/easel/pkg/adapters/memory"
	redisadapter "github.com/easel-ai/easel/pkg/adapters/redis"
	"github.com/easel-ai/easel/pkg/observability"
	"github.com/easel-ai/easel/pkg/session"
)

// NewLogger configures the command logger. Logs go to stderr so they
// never corrupt stdout protocols (MCP stdio, JSON output).
func NewLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

// BuildStudio assembles a Studio from the configuration: Redis-backed
// persistence with a distributed lock when configured, in-memory
// otherwise. The returned cleanup closes backend connections.
func BuildStudio(cfg Config, logger *slog.Logger) (*easel.Studio, func(), error) {
	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	if cfg.Redis.Addr == "" {
		studio := easel.New(
			easel.WithStore(memory.NewStore()),
			easel.WithLogger(logger),
			easel.WithMetrics(metrics),
		)
		return studio, func() {}, nil
	}

	client := backend.NewClient(&backend.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	manager := session.NewManager(redisadapter.NewFromClient(client),
		session.WithLocker(redisadapter.NewLocker(client, "easel:")),
		session.WithLogger(logger),
	)

	studio := easel.New(
		easel.WithSessionManager(manager),
		easel.WithLogger(logger),
		easel.WithMetrics(metrics),
	)
	cleanup := func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", "err", err)
		}
	}
	return studio, cleanup, nil
}
