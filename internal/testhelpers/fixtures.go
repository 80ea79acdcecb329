// Package testhelpers provides shared fixtures for the trendscout tests.
package testhelpers

import (
	"time"

	"github.com/jonesrussell/trendscout/internal/domain"
)

// RecordOption mutates a fixture record.
type RecordOption func(*domain.Record)

// NewRecord builds a plausible problem record for tests. Options override the
// defaults.
func NewRecord(opts ...RecordOption) domain.Record {
	r := domain.Record{
		Slug:       "payment-api-keeps-timing-out",
		Title:      "Payment API keeps timing out",
		Body:       "Our checkout integration fails under load and support can't help.",
		Platform:   domain.PlatformReddit,
		PlatformID: "abc123",
		Author: domain.Author{
			Username:   "builder42",
			ProfileURL: "https://reddit.com/u/builder42",
		},
		Category:         domain.CategoryTechnology,
		Tags:             []string{"webdev", "api"},
		UrgencyScore:     6,
		OpportunityScore: 5,
		SentimentScore:   -0.2,
		EngagementMetrics: domain.EngagementMetrics{
			Upvotes:  12,
			Comments: 4,
		},
		BusinessPotential: domain.BusinessPotential{
			MarketSize:            domain.MarketMedium,
			CompetitionLevel:      domain.LevelMedium,
			MonetizationPotential: domain.LevelMedium,
		},
		SourceURL:   "https://reddit.com/r/webdev/abc123",
		PublishedAt: time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC),
		Status:      domain.StatusNew,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithPlatform sets the platform and platform id.
func WithPlatform(p domain.Platform, id string) RecordOption {
	return func(r *domain.Record) {
		r.Platform = p
		r.PlatformID = id
	}
}

// WithScores sets the urgency and opportunity scores.
func WithScores(urgency, opportunity float64) RecordOption {
	return func(r *domain.Record) {
		r.UrgencyScore = urgency
		r.OpportunityScore = opportunity
	}
}

// WithStatus sets the lifecycle status.
func WithStatus(s domain.Status) RecordOption {
	return func(r *domain.Record) {
		r.Status = s
	}
}

// WithCategory sets the category.
func WithCategory(c domain.Category) RecordOption {
	return func(r *domain.Record) {
		r.Category = c
	}
}

// WithTags sets the tags.
func WithTags(tags ...string) RecordOption {
	return func(r *domain.Record) {
		r.Tags = tags
	}
}

// WithTitle sets the title and body.
func WithTitle(title, body string) RecordOption {
	return func(r *domain.Record) {
		r.Title = title
		r.Body = body
	}
}
