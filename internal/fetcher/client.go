// Package fetcher pulls raw content from the upstream platforms and feeds.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/jonesrussell/trendscout/internal/logger"
)

// Client defaults.
const (
	defaultTimeout     = 15 * time.Second
	defaultRPS         = 2
	defaultBurst       = 4
	defaultUserAgent   = "trendscout/1.0"
	maxResponseBodyLen = 4 << 20 // 4 MiB cap on any upstream response
)

// ClientConfig tunes the shared HTTP client.
type ClientConfig struct {
	Timeout           time.Duration
	RequestsPerSecond int
	Burst             int
	UserAgent         string
}

// Client is a rate-limited HTTP client shared by all source adapters. The
// limiter is global across sources so a full ingest run stays polite to
// upstreams even when sources fetch concurrently.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
	log       logger.Logger
}

// NewClient creates the shared fetch client.
func NewClient(log logger.Logger, cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

// Get fetches url and returns the response body. It blocks on the rate
// limiter first, so cancellation via ctx covers both the wait and the
// request.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, application/xml, text/xml")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyLen))
	if err != nil {
		return nil, fmt.Errorf("read body %s: %w", url, err)
	}
	return body, nil
}

// GetJSON fetches url and decodes the JSON response into v.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
