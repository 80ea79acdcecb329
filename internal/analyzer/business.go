package analyzer

import (
	"strings"

	"github.com/jonesrussell/trendscout/internal/domain"
)

// AssessBusinessPotential derives the qualitative market assessment from
// engagement counters and indicator phrases. Rule evaluation order is
// significant: the enterprise upgrade applies after the engagement tiers, the
// saturation check overrides the gap check, and the free/open-source check
// overrides payment willingness.
func (a *Analyzer) AssessBusinessPotential(metrics domain.EngagementMetrics, title, body string) domain.BusinessPotential {
	text := strings.ToLower(title + " " + body)

	marketSize := domain.MarketSmall
	if metrics.Upvotes > upvoteTier1 || metrics.Comments > commentTier1 {
		marketSize = domain.MarketMedium
	}
	if metrics.Upvotes > upvoteTier2 || metrics.Comments > commentTier2 {
		marketSize = domain.MarketLarge
	}

	// Enterprise and business mentions bump the market one step further.
	if strings.Contains(text, "enterprise") || strings.Contains(text, "business") || strings.Contains(text, "company") {
		if marketSize == domain.MarketSmall {
			marketSize = domain.MarketMedium
		} else {
			marketSize = domain.MarketLarge
		}
	}

	competitionLevel := domain.LevelMedium
	if strings.Contains(text, "no solution") || strings.Contains(text, "doesn't exist") {
		competitionLevel = domain.LevelLow
	}
	if strings.Contains(text, "many options") || strings.Contains(text, "saturated") {
		competitionLevel = domain.LevelHigh
	}

	monetizationPotential := domain.LevelMedium
	if strings.Contains(text, "would pay") || strings.Contains(text, "budget") || strings.Contains(text, "hire") {
		monetizationPotential = domain.LevelHigh
	}
	if strings.Contains(text, "free") || strings.Contains(text, "open source") {
		monetizationPotential = domain.LevelLow
	}

	return domain.BusinessPotential{
		MarketSize:            marketSize,
		CompetitionLevel:      competitionLevel,
		MonetizationPotential: monetizationPotential,
	}
}
