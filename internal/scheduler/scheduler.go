// Package scheduler runs the archive retention job on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Pruner deletes archived chronicles older than a cutoff.
type Pruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler periodically prunes the chronicle archive.
type Scheduler struct {
	cron      *cron.Cron
	ctx       context.Context
	cancel    context.CancelFunc
	pruner    Pruner
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// New creates a scheduler that keeps chronicles for retention.
func New(pruner Pruner, retention time.Duration, logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		ctx:       ctx,
		cancel:    cancel,
		pruner:    pruner,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// Start registers the prune job under spec, a standard cron expression or
// descriptor such as "@daily", and starts the scheduler.
func (s *Scheduler) Start(spec string) error {
	if s.retention <= 0 {
		s.logger.Warn("Archive retention disabled, scheduler will not prune")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce() }); err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("Archive prune scheduled", "schedule", spec, "retention", s.retention)
	return nil
}

// RunOnce prunes immediately and returns the number of deleted chronicles.
func (s *Scheduler) RunOnce() int64 {
	cutoff := s.now().Add(-s.retention)
	n, err := s.pruner.Prune(s.ctx, cutoff)
	if err != nil {
		s.logger.Error("Archive prune failed", "error", err)
		return 0
	}
	s.logger.Debug("Archive prune finished", "deleted", n, "cutoff", cutoff)
	return n
}

// Stop waits for a running job to finish, then stops the scheduler.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.cancel()
	s.logger.Info("Archive prune scheduler stopped")
}

// IsRunning reports whether a prune job is registered.
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
