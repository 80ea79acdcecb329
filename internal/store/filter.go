package store

import (
	"strings"

	"github.com/jonesrussell/trendscout/internal/domain"
)

// Filter is a conjunctive predicate over record fields. Zero values match
// everything. It deliberately covers only the predicates the service uses:
// equality on category/platform/status/slug/platform id, "at least"
// comparisons on the two scores, and a substring search across title, body
// and tags.
type Filter struct {
	Category       domain.Category
	Platform       domain.Platform
	Status         domain.Status
	Slug           string
	PlatformID     string
	MinUrgency     float64
	MinOpportunity float64
	Search         string
}

// Matches reports whether the record satisfies every set predicate.
func (f Filter) Matches(r *domain.Record) bool {
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Platform != "" && r.Platform != f.Platform {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.Slug != "" && r.Slug != f.Slug {
		return false
	}
	if f.PlatformID != "" && r.PlatformID != f.PlatformID {
		return false
	}
	if f.MinUrgency > 0 && r.UrgencyScore < f.MinUrgency {
		return false
	}
	if f.MinOpportunity > 0 && r.OpportunityScore < f.MinOpportunity {
		return false
	}
	if f.Search != "" && !matchesSearch(r, f.Search) {
		return false
	}
	return true
}

func matchesSearch(r *domain.Record, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Body), needle) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Patch holds the fields Update may override. Nil fields are left untouched;
// the merge is shallow. Status values are written as-is: transition legality
// is the caller's concern.
type Patch struct {
	Title            *string
	Body             *string
	Category         *domain.Category
	Tags             *[]string
	Status           *domain.Status
	Notes            *string
	UrgencyScore     *float64
	OpportunityScore *float64
	SentimentScore   *float64
	Metrics          *domain.EngagementMetrics
}
