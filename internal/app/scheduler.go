package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/attention-backend/internal/config"
	"github.com/heartmarshall/attention-backend/internal/service/attention"
)

// syncRunner runs one reconciliation pass over every domain.
type syncRunner interface {
	RunAll(ctx context.Context) ([]attention.SyncResult, error)
}

// passLock keeps scheduled passes exclusive across instances.
type passLock interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}

const syncLockName = "sync"

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithPassLock makes every pass hold lock for ttl. A pass that cannot take
// the lock is skipped.
func WithPassLock(lock passLock, ttl time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		s.lock = lock
		s.lockTTL = ttl
	}
}

// Scheduler triggers the smart pin synchronizer on a cron schedule. A tick
// that fires while the previous pass is still running is skipped.
type Scheduler struct {
	cron    *cron.Cron
	job     cron.Job
	runner  syncRunner
	timeout time.Duration
	log     *slog.Logger
	lock    passLock
	lockTTL time.Duration

	mu      sync.Mutex
	lastAt  time.Time
	lastErr error
}

// NewScheduler creates a Scheduler from the sync configuration.
func NewScheduler(log *slog.Logger, runner syncRunner, cfg config.SyncConfig, opts ...SchedulerOption) (*Scheduler, error) {
	schedule, err := config.ParseSchedule(cfg.Schedule)
	if err != nil {
		return nil, fmt.Errorf("parse sync schedule %q: %w", cfg.Schedule, err)
	}

	s := &Scheduler{
		runner:  runner,
		timeout: cfg.Timeout,
		log:     log.With("component", "scheduler"),
	}
	for _, opt := range opts {
		opt(s)
	}

	cl := cronLogger{log: s.log}
	s.job = cron.NewChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(s.run))
	s.cron = cron.New(cron.WithLocation(time.UTC), cron.WithLogger(cl))
	s.cron.Schedule(schedule, s.job)

	return s, nil
}

// Start begins firing the schedule in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("sync scheduler started", slog.Time("next_run", s.cron.Entries()[0].Next))
}

// Stop stops the schedule and waits for a running pass to finish or ctx to
// expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.log.Info("sync scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop scheduler: %w", ctx.Err())
	}
}

// LastSync returns when the last scheduled pass finished and its error.
func (s *Scheduler) LastSync() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAt, s.lastErr
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if s.lock != nil {
		release, ok, err := s.lock.TryLock(ctx, syncLockName, s.lockTTL)
		if err != nil {
			s.log.Warn("sync lock unavailable, skipping pass", slog.String("error", err.Error()))
			return
		}
		if !ok {
			s.log.Info("sync pass running on another instance, skipping")
			return
		}
		defer func() {
			if err := release(context.Background()); err != nil {
				s.log.Warn("release sync lock", slog.String("error", err.Error()))
			}
		}()
	}

	start := time.Now()
	results, err := s.runner.RunAll(ctx)

	s.mu.Lock()
	s.lastAt, s.lastErr = time.Now().UTC(), err
	s.mu.Unlock()

	if err != nil {
		s.log.Warn("scheduled sync finished with errors",
			slog.Int("domains", len(results)),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.Info("scheduled sync completed",
		slog.Int("domains", len(results)),
		slog.Duration("duration", time.Since(start)),
	)
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, slog.String("error", err.Error()))...)
}
