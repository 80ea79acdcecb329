// Package ingest runs the fetch-normalize-store pipeline.
package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/metrics"
	"github.com/jonesrussell/trendscout/internal/store"
)

// Source is one upstream adapter. Fetch returns fully normalized records;
// partial results alongside a nil error are expected when individual
// upstream calls fail.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]*domain.Record, error)
}

// RunResult summarizes one pipeline run.
type RunResult struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Total     int           `json:"total"`
	Added     int           `json:"added"`
	Updated   int           `json:"updated"`
	Skipped   int           `json:"skipped"`
	Failed    []string      `json:"failed,omitempty"` // sources whose fetch errored
}

// Pipeline pulls from every source and upserts into the store. Runs are
// serialized: a trigger arriving while a run is in flight waits for it.
type Pipeline struct {
	log     logger.Logger
	store   *store.Store
	metrics *metrics.Metrics
	sources []Source

	mu      sync.Mutex
	lastRun *RunResult
}

// New creates a pipeline over the given sources.
func New(log logger.Logger, st *store.Store, m *metrics.Metrics, sources ...Source) *Pipeline {
	return &Pipeline{
		log:     log,
		store:   st,
		metrics: m,
		sources: sources,
	}
}

// Run executes one full pass over all sources. A failing source is recorded
// and skipped; the run only errors when the context is done.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := &RunResult{StartedAt: time.Now().UTC()}

	for _, src := range p.sources {
		records, err := src.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			p.metrics.FetchErrors.WithLabelValues(src.Name()).Inc()
			result.Failed = append(result.Failed, src.Name())
			p.log.Warn("source fetch failed",
				logger.String("source", src.Name()),
				logger.Error(err),
			)
			// A source can fail mid-fetch and still return records.
		}

		for _, rec := range records {
			result.Total++
			switch p.upsert(rec) {
			case upsertAdded:
				result.Added++
				p.metrics.RecordsIngested.WithLabelValues(src.Name()).Inc()
			case upsertUpdated:
				result.Updated++
				p.metrics.RecordsUpdated.WithLabelValues(src.Name()).Inc()
			case upsertSkipped:
				result.Skipped++
				p.metrics.RecordsSkipped.WithLabelValues(src.Name()).Inc()
			}
		}
	}

	result.Duration = time.Since(result.StartedAt)
	p.metrics.RunsTotal.Inc()
	p.metrics.RunDurationSecs.Observe(result.Duration.Seconds())
	p.metrics.RecordsInStore.Set(float64(p.store.Count(store.Filter{})))
	p.lastRun = result

	p.log.Info("ingest run complete",
		logger.Int("total", result.Total),
		logger.Int("added", result.Added),
		logger.Int("updated", result.Updated),
		logger.Int("skipped", result.Skipped),
		logger.Duration("duration", result.Duration),
	)

	return result, nil
}

// LastRun returns the most recent run summary, or nil before the first run.
func (p *Pipeline) LastRun() *RunResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastRun
}

type upsertOutcome int

const (
	upsertAdded upsertOutcome = iota
	upsertUpdated
	upsertSkipped
)

// upsert stores a normalized record, deduplicating on (platform, platform
// id). A duplicate whose engagement counters moved gets its metrics and
// scores refreshed; an unchanged duplicate is dropped.
func (p *Pipeline) upsert(rec *domain.Record) upsertOutcome {
	existing := p.store.FindOne(store.Filter{
		Platform:   rec.Platform,
		PlatformID: rec.PlatformID,
	})
	if existing == nil {
		p.store.Create(*rec)
		return upsertAdded
	}

	if existing.EngagementMetrics == rec.EngagementMetrics {
		return upsertSkipped
	}

	p.store.Update(existing.ID, store.Patch{
		UrgencyScore:     &rec.UrgencyScore,
		OpportunityScore: &rec.OpportunityScore,
		SentimentScore:   &rec.SentimentScore,
		Metrics:          &rec.EngagementMetrics,
	})
	return upsertUpdated
}
