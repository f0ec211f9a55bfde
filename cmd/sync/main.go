// Command sync runs one smart pin reconciliation pass over every domain and
// exits. It is intended for deployments that trigger the synchronizer from an
// external scheduler instead of the in-process one.
//
// Exit codes: 0 = every domain converged, 1 = error or incomplete pass.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/attention-backend/internal/adapter/postgres"
	"github.com/heartmarshall/attention-backend/internal/app"
	"github.com/heartmarshall/attention-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Sync.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs, err := app.NewServices(logger, pool, cfg, nil)
	if err != nil {
		logger.Error("wire services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	results, err := svcs.Attention.RunAll(ctx)
	for _, r := range results {
		logger.Info("domain synced",
			slog.String("domain", r.Domain.String()),
			slog.Int("created", r.Created),
			slog.Int("updated", r.Updated),
			slog.Int("removed", r.Removed),
			slog.Int("failed", r.Failed),
		)
	}
	if err != nil {
		logger.Error("sync failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("sync completed", slog.Int("domains", len(results)))
}
