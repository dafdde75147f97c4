// Package scheduler runs the periodic analytics snapshot recompute.
package scheduler

import (
	"context"
	"time"

	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/service"
	"github.com/robfig/cron/v3"
)

// recomputeTimeout bounds one full recompute run across all users
const recomputeTimeout = 30 * time.Minute

// Scheduler triggers snapshot recomputation on a cron schedule
type Scheduler struct {
	cron      *cron.Cron
	analytics service.AnalyticsService
	spec      string
}

// New creates a scheduler that recomputes all user snapshots per the given
// cron spec (standard 5-field syntax).
func New(analytics service.AnalyticsService, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		analytics: analytics,
		spec:      spec,
	}
}

// Start registers the recompute job and begins the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.run)
	if err != nil {
		return err
	}
	s.cron.Start()
	logger.Info("scheduler started", logger.String("cron", s.spec))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), recomputeTimeout)
	defer cancel()

	started := time.Now()
	if err := s.analytics.RecomputeAllUsers(ctx); err != nil {
		logger.Error("scheduled recompute finished with errors",
			logger.Duration("elapsed", time.Since(started)),
			logger.Err(err))
		return
	}
	logger.Info("scheduled recompute finished",
		logger.Duration("elapsed", time.Since(started)))
}
