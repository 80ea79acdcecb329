package analyzer

import (
	"strings"

	"github.com/jonesrussell/trendscout/internal/domain"
)

// Engagement thresholds and bonuses. Both tiers of a counter can apply, so a
// heavily upvoted post earns up to +2 from upvotes and +2 from comments.
const (
	upvoteTier1  = 50
	upvoteTier2  = 100
	commentTier1 = 20
	commentTier2 = 50
	tierBonus    = 1.0
)

// ScoreOpportunity rates business potential on a 1-10 scale from engagement
// counters and keyword hits. Bonuses are additive per matching pattern with
// no per-category cap; texts dense in synonyms saturate at 10. That is the
// intended behavior, not an artifact.
func (a *Analyzer) ScoreOpportunity(title, body string, metrics domain.EngagementMetrics) float64 {
	score := baseScore
	text := strings.ToLower(title + " " + body)

	if metrics.Upvotes > upvoteTier1 {
		score += tierBonus
	}
	if metrics.Upvotes > upvoteTier2 {
		score += tierBonus
	}
	if metrics.Comments > commentTier1 {
		score += tierBonus
	}
	if metrics.Comments > commentTier2 {
		score += tierBonus
	}

	for _, wp := range willingnessToPayPatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}
	for _, wp := range competitionGapPatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}
	for _, wp := range scalePatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}
	for _, wp := range valuePatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}

	return clamp(score, minScore, maxScore)
}
