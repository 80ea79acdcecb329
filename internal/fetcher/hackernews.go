package fetcher

import (
	"context"
	"fmt"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

const (
	hackerNewsTopStoriesURL = "https://hacker-news.firebaseio.com/v0/topstories.json"
	hackerNewsItemURLFmt    = "https://hacker-news.firebaseio.com/v0/item/%d.json"

	defaultHackerNewsStoryLimit = 10
)

// HackerNews fetches the top stories from the Hacker News Firebase API.
// Each story is a separate request, so the story limit bounds the request
// count of a run.
type HackerNews struct {
	client *Client
	norm   *normalizer.Normalizer
	log    logger.Logger
	limit  int
}

// NewHackerNews creates the Hacker News source adapter.
func NewHackerNews(client *Client, norm *normalizer.Normalizer, log logger.Logger, limit int) *HackerNews {
	if limit <= 0 {
		limit = defaultHackerNewsStoryLimit
	}
	return &HackerNews{
		client: client,
		norm:   norm,
		log:    log,
		limit:  limit,
	}
}

// Name implements the source interface.
func (h *HackerNews) Name() string { return "hackernews" }

// Fetch pulls the current top stories and keeps the problem-shaped ones.
func (h *HackerNews) Fetch(ctx context.Context) ([]*domain.Record, error) {
	var ids []int64
	if err := h.client.GetJSON(ctx, hackerNewsTopStoriesURL, &ids); err != nil {
		return nil, fmt.Errorf("top stories: %w", err)
	}

	if len(ids) > h.limit {
		ids = ids[:h.limit]
	}

	var records []*domain.Record
	for _, id := range ids {
		var story normalizer.HackerNewsStory
		if err := h.client.GetJSON(ctx, fmt.Sprintf(hackerNewsItemURLFmt, id), &story); err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			h.log.Warn("hacker news item fetch failed",
				logger.Int64("id", id),
				logger.Error(err),
			)
			continue
		}

		if story.Title == "" || !h.norm.IsProblem(story.Title, story.Text) {
			continue
		}
		records = append(records, h.norm.FromHackerNews(ctx, story))
	}

	return records, nil
}
