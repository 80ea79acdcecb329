package normalizer

import (
	"context"
	"strings"
	"time"

	"github.com/jonesrussell/trendscout/internal/analyzer"
	"github.com/jonesrussell/trendscout/internal/domain"
)

// Popularity mapped onto upvotes for feed items, decaying by position so the
// feed order survives into opportunity scoring.
const (
	feedBasePopularity = 95
	feedPopularityStep = 5
)

// Categories recognized in feed text, checked in order; first hit wins.
var feedCategories = []domain.Category{
	domain.CategoryTechnology,
	domain.CategoryBusiness,
	"Science",
	domain.CategoryHealth,
	"Food & Beverage",
	"Fashion",
	"Lifestyle",
	"Travel",
	"Entertainment",
	"Sports",
}

// Keywords promoted to tags when they appear in feed text.
var feedKeywords = []string{
	"AI", "Digital", "Innovation", "Sustainable", "Health", "Wellness",
	"Technology", "Trend", "Future", "Design", "Smart", "Automation",
	"Healthcare", "Finance", "Marketing", "Food", "Beverage", "Research",
}

// FromFeedItem converts an RSS/Atom entry into a trend record. Feed items
// skip the problem gate and the subreddit category map; category and tags
// come from keyword scans of the cleaned title and description. index is the
// item's position in the feed, used to synthesize a popularity score.
func (n *Normalizer) FromFeedItem(ctx context.Context, it FeedItem, index int) *domain.Record {
	title := CleanFeedText(it.Title)
	body := Excerpt(it.Description)

	category, tags := feedCategoryAndTags(title, body)

	popularity := feedBasePopularity - index*feedPopularityStep
	if popularity < 0 {
		popularity = 0
	}
	metrics := domain.EngagementMetrics{Upvotes: popularity}

	a := n.analyzer.Analyze(ctx, analyzer.Input{
		Title:    title,
		Body:     body,
		Platform: domain.PlatformRSS,
		Metrics:  metrics,
	})

	imageURL := it.ImageURL
	if imageURL == "" {
		imageURL = ExtractImageURL(it.Description)
	}

	published := it.Published
	if published.IsZero() {
		published = time.Now().UTC()
	}

	return &domain.Record{
		Slug:       a.Slug,
		Title:      title,
		Body:       body,
		Platform:   domain.PlatformRSS,
		// Feeds restate the same story under fresh GUIDs; the slug is the
		// stable identity for trend records.
		PlatformID: a.Slug,
		Author: domain.Author{
			Username: it.Source,
		},
		Category:          category,
		Tags:              tags,
		UrgencyScore:      a.UrgencyScore,
		OpportunityScore:  a.OpportunityScore,
		SentimentScore:    a.SentimentScore,
		EngagementMetrics: metrics,
		KeywordMatches:    a.KeywordMatches,
		BusinessPotential: a.BusinessPotential,
		SourceURL:         it.Link,
		ImageURL:          imageURL,
		PublishedAt:       published,
		Status:            domain.StatusNew,
	}
}

// feedCategoryAndTags scans the cleaned feed text for a category and up to
// five keyword tags. The matched category doubles as the first tag; items
// matching nothing get the Trending/Innovation pair so no trend ships bare.
func feedCategoryAndTags(title, body string) (domain.Category, []string) {
	text := strings.ToLower(title + " " + body)

	category := domain.CategoryTechnology
	var tags []string
	for _, c := range feedCategories {
		if strings.Contains(text, strings.ToLower(string(c))) {
			category = c
			tags = append(tags, string(c))
			break
		}
	}

	for _, kw := range feedKeywords {
		if !strings.Contains(text, strings.ToLower(kw)) {
			continue
		}
		if !containsFold(tags, kw) {
			tags = append(tags, kw)
		}
	}

	if len(tags) < 2 {
		tags = append(tags, "Trending", "Innovation")
	}
	if len(tags) > domain.MaxTags {
		tags = tags[:domain.MaxTags]
	}
	return category, tags
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
