package fetcher

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

// Feeds polled when none are configured.
var defaultFeedURLs = []string{
	"https://www.trendhunter.com/rss/category/Business-Trends",
}

// RSS fetches trend articles from a set of RSS/Atom feeds.
type RSS struct {
	client *Client
	norm   *normalizer.Normalizer
	log    logger.Logger
	parser *gofeed.Parser
	urls   []string
}

// NewRSS creates the feed source adapter.
func NewRSS(client *Client, norm *normalizer.Normalizer, log logger.Logger, urls []string) *RSS {
	if len(urls) == 0 {
		urls = defaultFeedURLs
	}
	return &RSS{
		client: client,
		norm:   norm,
		log:    log,
		parser: gofeed.NewParser(),
		urls:   urls,
	}
}

// Name implements the source interface.
func (r *RSS) Name() string { return "rss" }

// Fetch pulls and parses each configured feed. Trend records skip the
// problem gate; every entry becomes a record.
func (r *RSS) Fetch(ctx context.Context) ([]*domain.Record, error) {
	var records []*domain.Record

	for _, url := range r.urls {
		body, err := r.client.Get(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			r.log.Warn("feed fetch failed",
				logger.String("url", url),
				logger.Error(err),
			)
			continue
		}

		feed, err := r.parser.ParseString(string(body))
		if err != nil {
			r.log.Warn("feed parse failed",
				logger.String("url", url),
				logger.Error(err),
			)
			continue
		}

		for i, entry := range feed.Items {
			records = append(records, r.norm.FromFeedItem(ctx, toFeedItem(entry, feed.Title), i))
		}
	}

	return records, nil
}

// toFeedItem reduces a parsed gofeed entry to the normalizer payload.
func toFeedItem(entry *gofeed.Item, source string) normalizer.FeedItem {
	it := normalizer.FeedItem{
		Title:       entry.Title,
		Description: entry.Description,
		Link:        entry.Link,
		Source:      source,
	}
	if entry.PublishedParsed != nil {
		it.Published = entry.PublishedParsed.UTC()
	} else {
		it.Published = time.Now().UTC()
	}
	// Enclosure wins over the channel image; the normalizer falls back to
	// scraping the description when both are absent.
	for _, enc := range entry.Enclosures {
		if enc.URL != "" {
			it.ImageURL = enc.URL
			break
		}
	}
	if it.ImageURL == "" && entry.Image != nil {
		it.ImageURL = entry.Image.URL
	}
	return it
}
