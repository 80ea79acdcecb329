package fetcher

import (
	"context"
	"fmt"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

const defaultRedditPostLimit = 25

// Subreddits polled when none are configured.
var defaultSubreddits = []string{
	"entrepreneur", "smallbusiness", "webdev", "programming",
	"personalfinance", "productivity",
}

// redditListing mirrors the subreddit listing envelope.
type redditListing struct {
	Data struct {
		Children []struct {
			Data normalizer.RedditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Reddit fetches new posts from a set of subreddits via the public JSON
// listing, no OAuth involved.
type Reddit struct {
	client     *Client
	norm       *normalizer.Normalizer
	log        logger.Logger
	subreddits []string
	limit      int
}

// NewReddit creates the Reddit source adapter.
func NewReddit(client *Client, norm *normalizer.Normalizer, log logger.Logger, subreddits []string, limit int) *Reddit {
	if len(subreddits) == 0 {
		subreddits = defaultSubreddits
	}
	if limit <= 0 {
		limit = defaultRedditPostLimit
	}
	return &Reddit{
		client:     client,
		norm:       norm,
		log:        log,
		subreddits: subreddits,
		limit:      limit,
	}
}

// Name implements the source interface.
func (r *Reddit) Name() string { return "reddit" }

// Fetch pulls new posts from each configured subreddit. A failing subreddit
// is logged and skipped; the remaining subreddits still contribute.
func (r *Reddit) Fetch(ctx context.Context) ([]*domain.Record, error) {
	var records []*domain.Record

	for _, sub := range r.subreddits {
		url := fmt.Sprintf("https://www.reddit.com/r/%s/new.json?limit=%d", sub, r.limit)

		var listing redditListing
		if err := r.client.GetJSON(ctx, url, &listing); err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			r.log.Warn("reddit fetch failed",
				logger.String("subreddit", sub),
				logger.Error(err),
			)
			continue
		}

		for _, child := range listing.Data.Children {
			post := child.Data
			if post.Subreddit == "" {
				post.Subreddit = sub
			}
			if !r.norm.IsProblem(post.Title, post.SelfText) {
				continue
			}
			records = append(records, r.norm.FromReddit(ctx, post))
		}
	}

	return records, nil
}
