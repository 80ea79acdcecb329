package analyzer

import (
	"strings"

	"github.com/jonesrussell/trendscout/internal/domain"
)

var subredditCategories = buildSubredditCategories()

func buildSubredditCategories() map[string]domain.Category {
	m := make(map[string]domain.Category)
	for _, s := range techSubreddits {
		m[s] = domain.CategoryTechnology
	}
	for _, s := range businessSubreddits {
		m[s] = domain.CategoryBusiness
	}
	for _, s := range consumerSubreddits {
		m[s] = domain.CategoryConsumer
	}
	for _, s := range personalSubreddits {
		m[s] = domain.CategoryPersonal
	}
	for _, s := range healthSubreddits {
		m[s] = domain.CategoryHealth
	}
	return m
}

// CategorizeSubreddit maps a subreddit name to a record category.
// Unknown subreddits default to Technology.
func (a *Analyzer) CategorizeSubreddit(subreddit string) domain.Category {
	if category, ok := subredditCategories[strings.ToLower(subreddit)]; ok {
		return category
	}
	return domain.CategoryTechnology
}
