// Package bootstrap wires the service components together.
package bootstrap

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jonesrussell/trendscout/internal/analyzer"
	"github.com/jonesrussell/trendscout/internal/api"
	"github.com/jonesrussell/trendscout/internal/config"
	"github.com/jonesrussell/trendscout/internal/fetcher"
	"github.com/jonesrussell/trendscout/internal/ingest"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/metrics"
	"github.com/jonesrussell/trendscout/internal/normalizer"
	"github.com/jonesrussell/trendscout/internal/store"
)

const defaultHTTPTimeout = 30 * time.Second

// Components holds every wired service component.
type Components struct {
	Store     *store.Store
	Analyzer  *analyzer.Analyzer
	Pipeline  *ingest.Pipeline
	Scheduler *ingest.Scheduler
	Server    *api.Server
}

// New builds the full component graph from config. Nothing is started;
// callers own the lifecycle of the scheduler and server.
func New(cfg *config.Config, log logger.Logger, reg prometheus.Registerer) *Components {
	st := store.New()
	if cfg.Service.Seed {
		store.Seed(st)
		log.Info("store seeded with sample records",
			logger.Int("count", st.Count(store.Filter{})),
		)
	}

	az := analyzer.New(log, analyzer.Config{Version: cfg.Analyzer.Version})
	norm := normalizer.New(log, az)

	client := fetcher.NewClient(log, fetcher.ClientConfig{
		Timeout:           cfg.Fetch.Timeout,
		RequestsPerSecond: cfg.Fetch.RequestsPerSecond,
		Burst:             cfg.Fetch.Burst,
		UserAgent:         cfg.Fetch.UserAgent,
	})

	m := metrics.New(reg)
	pipeline := ingest.New(log, st, m,
		fetcher.NewReddit(client, norm, log, cfg.Ingest.Subreddits, cfg.Ingest.RedditPostLimit),
		fetcher.NewStackExchange(client, norm, log, cfg.Ingest.StackExchange, cfg.Ingest.QuestionsPerSite),
		fetcher.NewGitHub(client, norm, log, cfg.Ingest.GitHubRepos, cfg.Ingest.IssuesPerRepo),
		fetcher.NewHackerNews(client, norm, log, cfg.Ingest.HackerNewsStories),
		fetcher.NewDevTo(client, norm, log, cfg.Ingest.DevToTags, cfg.Ingest.ArticlesPerTag),
		fetcher.NewRSS(client, norm, log, cfg.Ingest.FeedURLs),
	)

	scheduler := ingest.NewScheduler(log, pipeline, cfg.Ingest.Interval)

	handler := api.NewHandler(st, az, pipeline, log)
	server := api.NewServer(handler, api.ServerConfig{
		Port:         cfg.Service.Port,
		ReadTimeout:  defaultHTTPTimeout,
		WriteTimeout: defaultHTTPTimeout,
		Debug:        cfg.Service.Debug,
	}, log)

	return &Components{
		Store:     st,
		Analyzer:  az,
		Pipeline:  pipeline,
		Scheduler: scheduler,
		Server:    server,
	}
}

// HTTPShutdownTimeout bounds graceful HTTP shutdown.
func HTTPShutdownTimeout() time.Duration {
	return defaultHTTPTimeout
}
