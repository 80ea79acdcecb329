package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jonesrussell/trendscout/internal/logger"
)

// DefaultInterval is how often the scheduler triggers a run when the config
// does not say otherwise. Upstream content moves slowly enough that twice a
// day keeps the store fresh without hammering the free APIs.
const DefaultInterval = 12 * time.Hour

// Scheduler triggers pipeline runs on a fixed interval.
type Scheduler struct {
	log      logger.Logger
	pipeline *Pipeline
	interval time.Duration
	cron     *cron.Cron
}

// NewScheduler creates a scheduler driving the given pipeline.
func NewScheduler(log logger.Logger, p *Pipeline, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		log:      log,
		pipeline: p,
		interval: interval,
		cron:     cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

// Start registers the periodic run and starts the cron loop. The ctx bounds
// each triggered run, not the loop itself; use Stop to end the loop.
func (s *Scheduler) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.interval)

	_, err := s.cron.AddFunc(spec, func() {
		if _, err := s.pipeline.Run(ctx); err != nil {
			s.log.Error("scheduled ingest run failed", logger.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule ingest: %w", err)
	}

	s.cron.Start()
	s.log.Info("ingest scheduler started",
		logger.Duration("interval", s.interval),
	)
	return nil
}

// Stop halts the cron loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info("ingest scheduler stopped")
}
