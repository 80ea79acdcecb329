package ingest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/ingest"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/metrics"
	"github.com/jonesrussell/trendscout/internal/store"
	"github.com/jonesrussell/trendscout/internal/testhelpers"
)

type fakeSource struct {
	name    string
	records []*domain.Record
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(_ context.Context) ([]*domain.Record, error) {
	f.calls++
	return f.records, f.err
}

func newPipeline(t *testing.T, sources ...ingest.Source) (*ingest.Pipeline, *store.Store) {
	t.Helper()
	st := store.New()
	m := metrics.New(prometheus.NewRegistry())
	return ingest.New(logger.NewNop(), st, m, sources...), st
}

func recordPtr(opts ...testhelpers.RecordOption) *domain.Record {
	r := testhelpers.NewRecord(opts...)
	return &r
}

func TestPipeline_Run_AddsNewRecords(t *testing.T) {
	src := &fakeSource{
		name: "reddit",
		records: []*domain.Record{
			recordPtr(testhelpers.WithPlatform(domain.PlatformReddit, "a1")),
			recordPtr(testhelpers.WithPlatform(domain.PlatformReddit, "a2")),
		},
	}
	p, st := newPipeline(t, src)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 2, st.Count(store.Filter{}))
	assert.Equal(t, 1, src.calls)
}

func TestPipeline_Run_SkipsUnchangedDuplicates(t *testing.T) {
	src := &fakeSource{
		name: "reddit",
		records: []*domain.Record{
			recordPtr(testhelpers.WithPlatform(domain.PlatformReddit, "a1")),
		},
	}
	p, st := newPipeline(t, src)

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 1, st.Count(store.Filter{}))
}

func TestPipeline_Run_RefreshesChangedEngagement(t *testing.T) {
	src := &fakeSource{
		name: "reddit",
		records: []*domain.Record{
			recordPtr(testhelpers.WithPlatform(domain.PlatformReddit, "a1")),
		},
	}
	p, st := newPipeline(t, src)

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	// Same platform identity, heavier engagement and new scores.
	fresh := recordPtr(
		testhelpers.WithPlatform(domain.PlatformReddit, "a1"),
		testhelpers.WithScores(9, 8),
	)
	fresh.EngagementMetrics.Upvotes += 100
	src.records = []*domain.Record{fresh}

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 1, st.Count(store.Filter{}))

	stored := st.FindOne(store.Filter{Platform: domain.PlatformReddit, PlatformID: "a1"})
	require.NotNil(t, stored)
	assert.InDelta(t, 9.0, stored.UrgencyScore, 0.001)
	assert.Equal(t, fresh.EngagementMetrics.Upvotes, stored.EngagementMetrics.Upvotes)
}

func TestPipeline_Run_FailedSourceDoesNotStopOthers(t *testing.T) {
	bad := &fakeSource{name: "github", err: errors.New("rate limited")}
	good := &fakeSource{
		name: "hackernews",
		records: []*domain.Record{
			recordPtr(testhelpers.WithPlatform(domain.PlatformHackerNews, "hn-1")),
		},
	}
	p, st := newPipeline(t, bad, good)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"github"}, result.Failed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, st.Count(store.Filter{}))
}

func TestPipeline_Run_PartialResultsFromFailedSource(t *testing.T) {
	// A source can error after normalizing part of its batch.
	partial := &fakeSource{
		name: "stackexchange",
		records: []*domain.Record{
			recordPtr(testhelpers.WithPlatform(domain.PlatformStackOverflow, "se-superuser-1")),
		},
		err: errors.New("second site timed out"),
	}
	p, st := newPipeline(t, partial)

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"stackexchange"}, result.Failed)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, st.Count(store.Filter{}))
}

func TestPipeline_Run_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &fakeSource{name: "reddit", err: context.Canceled}
	p, _ := newPipeline(t, src)

	_, err := p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPipeline_LastRun(t *testing.T) {
	src := &fakeSource{
		name: "devto",
		records: []*domain.Record{
			recordPtr(testhelpers.WithPlatform(domain.PlatformDevTo, "devto-1")),
		},
	}
	p, _ := newPipeline(t, src)

	assert.Nil(t, p.LastRun())

	result, err := p.Run(context.Background())
	require.NoError(t, err)

	last := p.LastRun()
	require.NotNil(t, last)
	assert.Equal(t, result.Added, last.Added)
	assert.False(t, last.StartedAt.IsZero())
}
