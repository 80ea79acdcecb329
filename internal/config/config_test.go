package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/trendscout/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "trendscout", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 2, cfg.Fetch.RequestsPerSecond)
	assert.Equal(t, 12*time.Hour, cfg.Ingest.Interval)
	assert.Equal(t, 25, cfg.Ingest.RedditPostLimit)
	assert.Equal(t, 10, cfg.Ingest.HackerNewsStories)
	assert.Equal(t, "1.0", cfg.Analyzer.Version)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Service.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
service:
  port: 9090
  debug: true
logging:
  level: debug
ingest:
  interval: 1h
  subreddits:
    - webdev
  stack_exchange_sites:
    - site: superuser
      category: Technology
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Service.Port)
	assert.True(t, cfg.Service.Debug)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, time.Hour, cfg.Ingest.Interval)
	assert.Equal(t, []string{"webdev"}, cfg.Ingest.Subreddits)
	require.Len(t, cfg.Ingest.StackExchange, 1)
	assert.Equal(t, "superuser", cfg.Ingest.StackExchange[0].Site)

	// Untouched sections still get defaults.
	assert.Equal(t, "trendscout", cfg.Service.Name)
	assert.Equal(t, 5, cfg.Ingest.QuestionsPerSite)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("service: [not a map"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TRENDSCOUT_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("APP_DEBUG", "1")
	t.Setenv("TRENDSCOUT_INGEST_INTERVAL", "30m")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Service.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.Service.Debug)
	assert.Equal(t, 30*time.Minute, cfg.Ingest.Interval)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("service:\n  port: 9090\n"), 0o600))
	t.Setenv("TRENDSCOUT_PORT", "7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Service.Port)
}

func TestLoad_InvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("TRENDSCOUT_PORT", "not-a-number")
	t.Setenv("TRENDSCOUT_INGEST_INTERVAL", "soonish")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, 12*time.Hour, cfg.Ingest.Interval)
}

func TestLoad_StackExchangeCategoryParsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
ingest:
  stack_exchange_sites:
    - site: apple
      category: Technology
    - site: askubuntu
      category: Technology
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Ingest.StackExchange, 2)
	assert.Equal(t, "apple", cfg.Ingest.StackExchange[0].Site)
	assert.NotEmpty(t, cfg.Ingest.StackExchange[0].Category)
}
