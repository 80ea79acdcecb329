// Package domain defines the core data model for trendscout.
package domain

import "time"

// Platform identifies where a record was sourced from.
// It describes provenance only, not behavior.
type Platform string

// Known source platforms.
const (
	PlatformReddit        Platform = "reddit"
	PlatformStackOverflow Platform = "stackoverflow"
	PlatformQuora         Platform = "quora"
	PlatformAskFM         Platform = "askfm"
	PlatformRSS           Platform = "rss"
	PlatformGitHub        Platform = "github"
	PlatformHackerNews    Platform = "hackernews"
	PlatformDevTo         Platform = "devto"
)

// Category classifies a record's subject area. Problem-style records use the
// closed set below; feed-sourced trend records may carry other values
// (e.g. "Fashion", "Science"), so the type stays an open string.
type Category string

// Closed category set used by the subreddit mapper and problem records.
const (
	CategoryTechnology Category = "Technology"
	CategoryBusiness   Category = "Business"
	CategoryConsumer   Category = "Consumer"
	CategoryPersonal   Category = "Personal"
	CategoryHealth     Category = "Health"
)

// Status tracks a record through its review lifecycle.
// The expected flow is new -> analyzed -> actionable, with any state able to
// move to archived. The store does not validate transitions; callers own the
// lifecycle.
type Status string

// Record statuses.
const (
	StatusNew        Status = "new"
	StatusAnalyzed   Status = "analyzed"
	StatusActionable Status = "actionable"
	StatusArchived   Status = "archived"
)

// MarketSize estimates how large the addressable market is.
type MarketSize string

// Market size levels.
const (
	MarketSmall  MarketSize = "small"
	MarketMedium MarketSize = "medium"
	MarketLarge  MarketSize = "large"
)

// Level is a low/medium/high qualitative rating.
type Level string

// Qualitative rating levels.
const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Score bounds for urgency, opportunity and sentiment.
const (
	MinScore     = 1.0
	MaxScore     = 10.0
	MinSentiment = -1.0
	MaxSentiment = 1.0
)

// MaxTags is the maximum number of tags carried on a record.
const MaxTags = 5

// Author identifies who posted the source content.
type Author struct {
	Username   string `json:"username"`
	Reputation int    `json:"reputation,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// EngagementMetrics holds the source platform's engagement counters.
// All fields are optional and non-negative.
type EngagementMetrics struct {
	Upvotes  int `json:"upvotes,omitempty"`
	Comments int `json:"comments,omitempty"`
	Views    int `json:"views,omitempty"`
	Shares   int `json:"shares,omitempty"`
}

// BusinessPotential is the qualitative market assessment for a record.
type BusinessPotential struct {
	MarketSize            MarketSize `json:"market_size"`
	CompetitionLevel      Level      `json:"competition_level"`
	MonetizationPotential Level      `json:"monetization_potential"`
}

// Record is a single scored, tagged unit of ingested content.
// It generalizes the trend article and problem post shapes: both carry the
// same scores, tags and business assessment, and are addressed externally by
// the (Platform, PlatformID) pair. Slugs are unique within a source but can
// collide across sources.
type Record struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Platform   Platform `json:"platform"`
	PlatformID string   `json:"platform_id"`
	Author     Author   `json:"author"`

	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Tags        []string `json:"tags"`

	UrgencyScore     float64 `json:"urgency_score"`     // 1-10
	OpportunityScore float64 `json:"opportunity_score"` // 1-10
	SentimentScore   float64 `json:"sentiment_score"`   // -1 to 1

	EngagementMetrics EngagementMetrics `json:"engagement_metrics"`
	KeywordMatches    []string          `json:"keyword_matches"`
	BusinessPotential BusinessPotential `json:"business_potential"`

	SourceURL string `json:"source_url,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`

	PublishedAt  time.Time  `json:"published_at"`
	DiscoveredAt time.Time  `json:"discovered_at"`
	LastAnalyzed *time.Time `json:"last_analyzed,omitempty"`

	Status Status `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// DedupKey returns the external identity of the record. Two ingested payloads
// with the same key describe the same source content.
func (r *Record) DedupKey() string {
	return string(r.Platform) + ":" + r.PlatformID
}
