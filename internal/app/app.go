package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/attention-backend/internal/adapter/postgres"
	"github.com/heartmarshall/attention-backend/internal/adapter/redis"
	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/internal/transport/middleware"
	"github.com/heartmarshall/attention-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svcs, err := NewServices(logger, pool, cfg, reg)
	if err != nil {
		return err
	}

	var (
		scheduler *Scheduler
		health    = rest.NewHealthHandler(pool, nil, Version)
	)
	if cfg.Sync.Enabled {
		var opts []SchedulerOption
		if cfg.Redis.Enabled() {
			client, err := redis.NewClient(ctx, cfg.Redis)
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
			defer client.Close()
			opts = append(opts, WithPassLock(redis.NewLocker(client), cfg.Sync.LockTTL))
			logger.Info("sync passes coordinated through redis", slog.Duration("lock_ttl", cfg.Sync.LockTTL))
		}

		scheduler, err = NewScheduler(logger, svcs.Attention, cfg.Sync, opts...)
		if err != nil {
			return err
		}
		health = rest.NewHealthHandler(pool, scheduler, Version)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Routes{
		Health:    health,
		Pins:      rest.NewPinHandler(svcs.Pins, logger),
		Attention: rest.NewAttentionHandler(svcs.Attention, logger),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		SyncLimit: limiter.Limit(cfg.Server.SyncTriggerPerMinute),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger, "/live", "/ready", "/metrics"),
		middleware.CORS(cfg.CORS),
		middleware.Identity(cfg.Identity),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	if scheduler != nil {
		scheduler.Start()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
		if scheduler != nil {
			if err := scheduler.Stop(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
