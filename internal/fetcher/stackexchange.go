package fetcher

import (
	"context"
	"fmt"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

const defaultStackExchangePageSize = 5

// StackExchangeSite pairs a network site slug with the category its
// questions land under.
type StackExchangeSite struct {
	Site     string          `yaml:"site"`
	Category domain.Category `yaml:"category"`
}

// Sites polled when none are configured.
var defaultStackExchangeSites = []StackExchangeSite{
	{Site: "askubuntu", Category: domain.CategoryTechnology},
	{Site: "superuser", Category: domain.CategoryTechnology},
	{Site: "serverfault", Category: domain.CategoryTechnology},
	{Site: "unix", Category: domain.CategoryTechnology},
	{Site: "apple", Category: domain.CategoryTechnology},
}

// stackExchangeResponse mirrors the questions API envelope.
type stackExchangeResponse struct {
	Items []normalizer.StackExchangeQuestion `json:"items"`
}

// StackExchange fetches recent questions across the Stack Exchange network.
type StackExchange struct {
	client   *Client
	norm     *normalizer.Normalizer
	log      logger.Logger
	sites    []StackExchangeSite
	pageSize int
}

// NewStackExchange creates the Stack Exchange source adapter.
func NewStackExchange(client *Client, norm *normalizer.Normalizer, log logger.Logger, sites []StackExchangeSite, pageSize int) *StackExchange {
	if len(sites) == 0 {
		sites = defaultStackExchangeSites
	}
	if pageSize <= 0 {
		pageSize = defaultStackExchangePageSize
	}
	return &StackExchange{
		client:   client,
		norm:     norm,
		log:      log,
		sites:    sites,
		pageSize: pageSize,
	}
}

// Name implements the source interface.
func (s *StackExchange) Name() string { return "stackexchange" }

// Fetch pulls the newest questions from each configured site.
func (s *StackExchange) Fetch(ctx context.Context) ([]*domain.Record, error) {
	var records []*domain.Record

	for _, site := range s.sites {
		url := fmt.Sprintf(
			"https://api.stackexchange.com/2.3/questions?order=desc&sort=creation&site=%s&pagesize=%d&filter=withbody",
			site.Site, s.pageSize,
		)

		var resp stackExchangeResponse
		if err := s.client.GetJSON(ctx, url, &resp); err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			s.log.Warn("stack exchange fetch failed",
				logger.String("site", site.Site),
				logger.Error(err),
			)
			continue
		}

		for _, q := range resp.Items {
			if !s.norm.IsProblem(q.Title, q.Body) {
				continue
			}
			records = append(records, s.norm.FromStackExchange(ctx, q, site.Site, site.Category))
		}
	}

	return records, nil
}
