// Package scheduler runs the periodic background jobs of the server, such as
// the job catalog refresh, on a robfig/cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/postpilot/postpilot/internal/countdown"
)

// Job is a unit of scheduled work.
type Job func(ctx context.Context) error

// Scheduler wraps robfig/cron and runs every registered job on one spec.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	schedule cron.Schedule
	logger   *zap.Logger

	mu      sync.Mutex
	jobs    map[string]Job
	started time.Time
}

// New creates a Scheduler for spec, e.g. "@every 15m".
func New(spec string, logger *zap.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cronLogger{logger.Sugar()})),
		spec:     spec,
		schedule: schedule,
		logger:   logger,
		jobs:     make(map[string]Job),
	}, nil
}

// Add registers a named job. Jobs must be added before Start.
func (s *Scheduler) Add(name string, job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[name] = job
}

// Start schedules every job and runs each one once immediately so data is
// fresh without waiting for the first tick. The jobs receive ctx.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, job := range s.jobs {
		name, job := name, job
		s.cron.Schedule(s.schedule, cron.FuncJob(func() { s.run(ctx, name, job) }))
		go s.run(ctx, name, job)
	}

	s.started = time.Now()
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("spec", s.spec), zap.Int("jobs", len(s.jobs)))
}

// Stop stops the scheduler and waits for running jobs to finish or ctx to
// be done, whichever comes first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scheduler stop timed out")
	}
	s.logger.Info("scheduler stopped")
}

// Countdown returns a countdown that follows this scheduler's ticks.
// Before Start it is anchored at the current time.
func (s *Scheduler) Countdown() *countdown.Countdown {
	s.mu.Lock()
	anchor := s.started
	s.mu.Unlock()
	if anchor.IsZero() {
		anchor = time.Now()
	}
	return countdown.FromSchedule(s.schedule, anchor)
}

func (s *Scheduler) run(ctx context.Context, name string, job Job) {
	start := time.Now()
	if err := job(ctx); err != nil {
		s.logger.Error("scheduled job failed", zap.String("job", name), zap.Error(err))
		return
	}
	s.logger.Debug("scheduled job finished", zap.String("job", name), zap.Duration("duration", time.Since(start)))
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	s *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}
