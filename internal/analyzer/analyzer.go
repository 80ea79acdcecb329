package analyzer

import (
	"context"
	"time"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
)

// Score bounds shared by the urgency and opportunity scorers.
const (
	minScore = 1.0
	maxScore = 10.0
)

// Analyzer scores and tags free text against the fixed rule tables.
// All scoring is deterministic, side-effect free and total: malformed or
// empty input degrades to base scores, never to an error.
type Analyzer struct {
	log     logger.Logger
	version string
}

// Config holds configuration for the analyzer.
type Config struct {
	Version string
}

// Analysis is the complete scoring output for one piece of content.
type Analysis struct {
	UrgencyScore      float64                  `json:"urgency_score"`
	OpportunityScore  float64                  `json:"opportunity_score"`
	SentimentScore    float64                  `json:"sentiment_score"`
	Category          domain.Category          `json:"category"`
	Tags              []string                 `json:"tags"`
	KeywordMatches    []string                 `json:"keyword_matches"`
	BusinessPotential domain.BusinessPotential `json:"business_potential"`
	Slug              string                   `json:"slug"`
	AnalyzerVersion   string                   `json:"analyzer_version"`
	ProcessingTimeMs  int64                    `json:"processing_time_ms"`
}

// New creates an analyzer.
func New(log logger.Logger, cfg Config) *Analyzer {
	return &Analyzer{
		log:     log,
		version: cfg.Version,
	}
}

// Input carries the raw material for a full analysis.
type Input struct {
	Title     string
	Body      string
	Platform  domain.Platform
	Metrics   domain.EngagementMetrics
	Subreddit string // Reddit only; drives category mapping
}

// Analyze runs the full scoring pass over one piece of content.
func (a *Analyzer) Analyze(ctx context.Context, in Input) *Analysis {
	start := time.Now()

	// 1. Scalar scores
	urgency := a.ScoreUrgency(in.Title, in.Body)
	opportunity := a.ScoreOpportunity(in.Title, in.Body, in.Metrics)
	sentiment := a.ScoreSentiment(in.Title, in.Body)

	// 2. Tags and explainability matches
	tags := a.ExtractTags(in.Title, in.Body)
	matches := a.FindKeywordMatches(in.Title, in.Body)

	// 3. Business potential
	potential := a.AssessBusinessPotential(in.Metrics, in.Title, in.Body)

	// 4. Category: subreddit mapping for Reddit posts, Technology otherwise
	category := domain.CategoryTechnology
	if in.Platform == domain.PlatformReddit && in.Subreddit != "" {
		category = a.CategorizeSubreddit(in.Subreddit)
	}

	result := &Analysis{
		UrgencyScore:      urgency,
		OpportunityScore:  opportunity,
		SentimentScore:    sentiment,
		Category:          category,
		Tags:              tags,
		KeywordMatches:    matches,
		BusinessPotential: potential,
		Slug:              Slugify(in.Title),
		AnalyzerVersion:   a.version,
		ProcessingTimeMs:  time.Since(start).Milliseconds(),
	}

	a.log.Debug("analysis complete",
		logger.String("platform", string(in.Platform)),
		logger.String("slug", result.Slug),
		logger.Float64("urgency", urgency),
		logger.Float64("opportunity", opportunity),
		logger.Float64("sentiment", sentiment),
		logger.Strings("tags", tags),
	)

	return result
}
