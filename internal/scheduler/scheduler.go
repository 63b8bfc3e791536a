// Package scheduler runs feed refreshes on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

const defaultRunTimeout = 5 * time.Minute

type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

// NewScheduler returns a scheduler whose runs are each bounded by
// runTimeout, or five minutes when runTimeout is zero.
func NewScheduler(refresher Refresher, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}
	return &Scheduler{
		refresher:  refresher,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start refreshes immediately and then on every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	n, err := s.refresher.Refresh(runCtx)
	if err != nil {
		s.logger.Error("refresh failed", "error", err)
		return
	}
	s.logger.Debug("scheduled refresh done", "new", n)
}
