// Package config loads service configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/trendscout/internal/fetcher"
)

// Default configuration values.
const (
	defaultServiceName    = "trendscout"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultLogLevel       = "info"

	defaultFetchTimeoutSec   = 15
	defaultFetchRPS          = 2
	defaultFetchBurst        = 4
	defaultIngestIntervalHrs = 12
	defaultHackerNewsStories = 10
	defaultRedditPostsPerSub = 25
	defaultQuestionsPerSite  = 5
	defaultIssuesPerRepo     = 5
	defaultArticlesPerTag    = 5
	defaultAnalyzerVersion   = "1.0"
)

// Config holds all configuration for the service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Ingest   IngestConfig   `yaml:"ingest"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
	Debug   bool   `yaml:"debug"`
	Seed    bool   `yaml:"seed"` // load sample records on startup
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// FetchConfig holds the shared HTTP client settings.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	RequestsPerSecond int           `yaml:"requests_per_second"`
	Burst             int           `yaml:"burst"`
	UserAgent         string        `yaml:"user_agent"`
}

// IngestConfig holds the pipeline sources and schedule.
type IngestConfig struct {
	Interval          time.Duration               `yaml:"interval"`
	RunOnStartup      bool                        `yaml:"run_on_startup"`
	Subreddits        []string                    `yaml:"subreddits"`
	RedditPostLimit   int                         `yaml:"reddit_post_limit"`
	StackExchange     []fetcher.StackExchangeSite `yaml:"stack_exchange_sites"`
	QuestionsPerSite  int                         `yaml:"questions_per_site"`
	GitHubRepos       []string                    `yaml:"github_repos"`
	IssuesPerRepo     int                         `yaml:"issues_per_repo"`
	HackerNewsStories int                         `yaml:"hackernews_stories"`
	DevToTags         []string                    `yaml:"devto_tags"`
	ArticlesPerTag    int                         `yaml:"articles_per_tag"`
	FeedURLs          []string                    `yaml:"feed_urls"`
}

// AnalyzerConfig holds analyzer settings.
type AnalyzerConfig struct {
	Version string `yaml:"version"`
}

// Load reads configuration from the given YAML path, then applies environment
// overrides and defaults. A missing file is not an error; env and defaults
// alone produce a runnable config. A .env file in the working directory is
// loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// fall through to env and defaults
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	setDefaults(cfg)
	return cfg, nil
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TRENDSCOUT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Service.Port = port
		}
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		cfg.Service.Debug = v == "true" || v == "1"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TRENDSCOUT_SEED"); v != "" {
		cfg.Service.Seed = v == "true" || v == "1"
	}
	if v := os.Getenv("TRENDSCOUT_INGEST_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Ingest.Interval = d
		}
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setFetchDefaults(&cfg.Fetch)
	setIngestDefaults(&cfg.Ingest)
	if cfg.Analyzer.Version == "" {
		cfg.Analyzer.Version = defaultAnalyzerVersion
	}
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
}

func setFetchDefaults(f *FetchConfig) {
	if f.Timeout == 0 {
		f.Timeout = defaultFetchTimeoutSec * time.Second
	}
	if f.RequestsPerSecond == 0 {
		f.RequestsPerSecond = defaultFetchRPS
	}
	if f.Burst == 0 {
		f.Burst = defaultFetchBurst
	}
}

func setIngestDefaults(i *IngestConfig) {
	if i.Interval == 0 {
		i.Interval = defaultIngestIntervalHrs * time.Hour
	}
	if i.RedditPostLimit == 0 {
		i.RedditPostLimit = defaultRedditPostsPerSub
	}
	if i.QuestionsPerSite == 0 {
		i.QuestionsPerSite = defaultQuestionsPerSite
	}
	if i.IssuesPerRepo == 0 {
		i.IssuesPerRepo = defaultIssuesPerRepo
	}
	if i.HackerNewsStories == 0 {
		i.HackerNewsStories = defaultHackerNewsStories
	}
	if i.ArticlesPerTag == 0 {
		i.ArticlesPerTag = defaultArticlesPerTag
	}
}
