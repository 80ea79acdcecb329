package fetcher

import (
	"context"
	"fmt"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

const defaultDevToPageSize = 5

// Tags polled when none are configured.
var defaultDevToTags = []string{"help", "discuss", "javascript", "react", "node"}

// DevTo fetches recent articles per tag from the Dev.to articles API.
type DevTo struct {
	client   *Client
	norm     *normalizer.Normalizer
	log      logger.Logger
	tags     []string
	pageSize int
}

// NewDevTo creates the Dev.to source adapter.
func NewDevTo(client *Client, norm *normalizer.Normalizer, log logger.Logger, tags []string, pageSize int) *DevTo {
	if len(tags) == 0 {
		tags = defaultDevToTags
	}
	if pageSize <= 0 {
		pageSize = defaultDevToPageSize
	}
	return &DevTo{
		client:   client,
		norm:     norm,
		log:      log,
		tags:     tags,
		pageSize: pageSize,
	}
}

// Name implements the source interface.
func (d *DevTo) Name() string { return "devto" }

// Fetch pulls articles for each configured tag.
func (d *DevTo) Fetch(ctx context.Context) ([]*domain.Record, error) {
	var records []*domain.Record

	for _, tag := range d.tags {
		url := fmt.Sprintf("https://dev.to/api/articles?tag=%s&per_page=%d", tag, d.pageSize)

		var articles []normalizer.DevToArticle
		if err := d.client.GetJSON(ctx, url, &articles); err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			d.log.Warn("dev.to fetch failed",
				logger.String("tag", tag),
				logger.Error(err),
			)
			continue
		}

		for _, art := range articles {
			if !d.norm.IsProblem(art.Title, art.Description) {
				continue
			}
			records = append(records, d.norm.FromDevTo(ctx, art))
		}
	}

	return records, nil
}
