package analyzer

import "strings"

// Urgency scoring constants.
const (
	baseScore = 5.0

	questionMarkThreshold = 2
	questionMarkBonus     = 0.5
	exclamationThreshold  = 1
	exclamationBonus      = 1.0
)

// ScoreUrgency rates how time-sensitive a post is on a 1-10 scale.
// Each matching pattern contributes its table weight once, regardless of how
// often it occurs. Heavy punctuation adds small flat bonuses.
func (a *Analyzer) ScoreUrgency(title, body string) float64 {
	score := baseScore
	text := strings.ToLower(title + " " + body)

	for _, wp := range timeSensitivePatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}
	for _, wp := range emotionalDistressPatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}
	for _, wp := range businessImpactPatterns {
		if wp.pattern.MatchString(text) {
			score += wp.weight
		}
	}

	// Question marks signal uncertainty, exclamation marks signal urgency.
	if strings.Count(text, "?") > questionMarkThreshold {
		score += questionMarkBonus
	}
	if strings.Count(text, "!") > exclamationThreshold {
		score += exclamationBonus
	}

	return clamp(score, minScore, maxScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
