// Package normalizer converts raw source payloads into scored Records.
package normalizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonesrussell/trendscout/internal/analyzer"
	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
)

// Synthetic platform id prefixes for sources whose native ids would collide
// across platforms sharing the same Platform value.
const (
	githubIDPrefix        = "gh-"
	hackerNewsIDPrefix    = "hn-"
	devToIDPrefix         = "devto-"
	stackExchangeIDPrefix = "se-"
)

const maxIssueLabelTags = 3

// Normalizer turns per-source payloads into complete domain Records. Every
// conversion runs the analyzer so a freshly normalized record already carries
// scores, tags, category and business assessment.
type Normalizer struct {
	log      logger.Logger
	analyzer *analyzer.Analyzer
}

// New creates a normalizer backed by the given analyzer.
func New(log logger.Logger, az *analyzer.Analyzer) *Normalizer {
	return &Normalizer{
		log:      log,
		analyzer: az,
	}
}

// IsProblem reports whether the payload text reads like a problem statement.
// Adapters apply it as an admission gate before conversion; feed items bypass
// it because trend articles are not problem-shaped.
func (n *Normalizer) IsProblem(title, body string) bool {
	return n.analyzer.IsProblemText(title, body)
}

// FromReddit converts a subreddit listing entry.
func (n *Normalizer) FromReddit(ctx context.Context, p RedditPost) *domain.Record {
	body := p.SelfText
	if body == "" {
		body = p.Title
	}

	metrics := domain.EngagementMetrics{
		Upvotes:  p.Ups,
		Comments: p.NumComments,
	}
	a := n.analyzer.Analyze(ctx, analyzer.Input{
		Title:     p.Title,
		Body:      body,
		Platform:  domain.PlatformReddit,
		Metrics:   metrics,
		Subreddit: p.Subreddit,
	})

	return &domain.Record{
		Slug:       a.Slug,
		Title:      p.Title,
		Body:       body,
		Platform:   domain.PlatformReddit,
		PlatformID: p.ID,
		Author: domain.Author{
			Username:   p.Author,
			ProfileURL: "https://reddit.com/u/" + p.Author,
		},
		Category:          a.Category,
		Tags:              prependTag(p.Subreddit, a.Tags),
		UrgencyScore:      a.UrgencyScore,
		OpportunityScore:  a.OpportunityScore,
		SentimentScore:    a.SentimentScore,
		EngagementMetrics: metrics,
		KeywordMatches:    a.KeywordMatches,
		BusinessPotential: a.BusinessPotential,
		SourceURL:         "https://reddit.com" + p.Permalink,
		PublishedAt:       unixToTime(int64(p.CreatedUTC)),
		Status:            domain.StatusNew,
	}
}

// FromStackExchange converts a Stack Exchange questions API item. The site
// slug (e.g. "superuser") disambiguates ids across the network and becomes a
// trailing tag; category comes from the caller's site configuration.
func (n *Normalizer) FromStackExchange(ctx context.Context, q StackExchangeQuestion, site string, category domain.Category) *domain.Record {
	body := Excerpt(q.Body)

	metrics := domain.EngagementMetrics{
		Upvotes:  q.Score,
		Comments: q.AnswerCount,
		Views:    q.ViewCount,
	}
	a := n.analyzer.Analyze(ctx, analyzer.Input{
		Title:    q.Title,
		Body:     body,
		Platform: domain.PlatformStackOverflow,
		Metrics:  metrics,
	})

	tags := q.Tags
	if len(tags) > maxIssueLabelTags {
		tags = tags[:maxIssueLabelTags]
	}
	tags = append(append([]string{}, tags...), site)

	profileURL := q.Owner.Link
	if profileURL == "" {
		profileURL = fmt.Sprintf("https://%s.stackexchange.com", site)
	}
	username := q.Owner.DisplayName
	if username == "" {
		username = "Stack Exchange User"
	}

	return &domain.Record{
		Slug:       a.Slug,
		Title:      q.Title,
		Body:       body,
		Platform:   domain.PlatformStackOverflow,
		PlatformID: fmt.Sprintf("%s%s-%d", stackExchangeIDPrefix, site, q.QuestionID),
		Author: domain.Author{
			Username:   username,
			Reputation: q.Owner.Reputation,
			ProfileURL: profileURL,
		},
		Category:          category,
		Tags:              tags,
		UrgencyScore:      a.UrgencyScore,
		OpportunityScore:  a.OpportunityScore,
		SentimentScore:    a.SentimentScore,
		EngagementMetrics: metrics,
		KeywordMatches:    a.KeywordMatches,
		BusinessPotential: a.BusinessPotential,
		SourceURL:         q.Link,
		PublishedAt:       unixToTime(q.CreationDate),
		Status:            domain.StatusNew,
	}
}

// FromGitHubIssue converts an issue fetched from owner/repo.
func (n *Normalizer) FromGitHubIssue(ctx context.Context, is GitHubIssue, repo string) *domain.Record {
	body := Truncate(is.Body)

	metrics := domain.EngagementMetrics{
		Upvotes:  is.Reactions.PlusOne,
		Comments: is.Comments,
	}
	a := n.analyzer.Analyze(ctx, analyzer.Input{
		Title:    is.Title,
		Body:     body,
		Platform: domain.PlatformGitHub,
		Metrics:  metrics,
	})

	tags := []string{"github", repoName(repo)}
	for i, l := range is.Labels {
		if i == maxIssueLabelTags {
			break
		}
		tags = append(tags, l.Name)
	}

	return &domain.Record{
		Slug:       a.Slug,
		Title:      is.Title,
		Body:       body,
		Platform:   domain.PlatformGitHub,
		PlatformID: fmt.Sprintf("%s%d", githubIDPrefix, is.ID),
		Author: domain.Author{
			Username:   is.User.Login,
			ProfileURL: is.User.HTMLURL,
		},
		Category:          domain.CategoryTechnology,
		Tags:              tags,
		UrgencyScore:      a.UrgencyScore,
		OpportunityScore:  a.OpportunityScore,
		SentimentScore:    a.SentimentScore,
		EngagementMetrics: metrics,
		KeywordMatches:    a.KeywordMatches,
		BusinessPotential: a.BusinessPotential,
		SourceURL:         is.HTMLURL,
		PublishedAt:       is.CreatedAt,
		Status:            domain.StatusNew,
	}
}

// FromHackerNews converts a Hacker News story item.
func (n *Normalizer) FromHackerNews(ctx context.Context, s HackerNewsStory) *domain.Record {
	body := s.Text
	if body == "" {
		body = s.Title
	}
	body = Excerpt(body)

	metrics := domain.EngagementMetrics{
		Upvotes:  s.Score,
		Comments: s.Descendants,
	}
	a := n.analyzer.Analyze(ctx, analyzer.Input{
		Title:    s.Title,
		Body:     body,
		Platform: domain.PlatformHackerNews,
		Metrics:  metrics,
	})

	author := s.By
	if author == "" {
		author = "HN User"
	}

	return &domain.Record{
		Slug:       a.Slug,
		Title:      s.Title,
		Body:       body,
		Platform:   domain.PlatformHackerNews,
		PlatformID: fmt.Sprintf("%s%d", hackerNewsIDPrefix, s.ID),
		Author: domain.Author{
			Username:   author,
			ProfileURL: "https://news.ycombinator.com/user?id=" + s.By,
		},
		Category:          domain.CategoryTechnology,
		Tags:              []string{"hackernews", "startup", "tech"},
		UrgencyScore:      a.UrgencyScore,
		OpportunityScore:  a.OpportunityScore,
		SentimentScore:    a.SentimentScore,
		EngagementMetrics: metrics,
		KeywordMatches:    a.KeywordMatches,
		BusinessPotential: a.BusinessPotential,
		SourceURL:         fmt.Sprintf("https://news.ycombinator.com/item?id=%d", s.ID),
		PublishedAt:       unixToTime(s.Time),
		Status:            domain.StatusNew,
	}
}

// FromDevTo converts a Dev.to article.
func (n *Normalizer) FromDevTo(ctx context.Context, art DevToArticle) *domain.Record {
	body := Truncate(art.Description)

	metrics := domain.EngagementMetrics{
		Upvotes:  art.PublicReactionsCount,
		Comments: art.CommentsCount,
	}
	a := n.analyzer.Analyze(ctx, analyzer.Input{
		Title:    art.Title,
		Body:     body,
		Platform: domain.PlatformDevTo,
		Metrics:  metrics,
	})

	tags := art.TagList
	if len(tags) > 4 {
		tags = tags[:4]
	}

	return &domain.Record{
		Slug:       a.Slug,
		Title:      art.Title,
		Body:       body,
		Platform:   domain.PlatformDevTo,
		PlatformID: fmt.Sprintf("%s%d", devToIDPrefix, art.ID),
		Author: domain.Author{
			Username:   art.User.Username,
			ProfileURL: "https://dev.to/" + art.User.Username,
		},
		Category:          domain.CategoryTechnology,
		Tags:              tags,
		UrgencyScore:      a.UrgencyScore,
		OpportunityScore:  a.OpportunityScore,
		SentimentScore:    a.SentimentScore,
		EngagementMetrics: metrics,
		KeywordMatches:    a.KeywordMatches,
		BusinessPotential: a.BusinessPotential,
		SourceURL:         art.URL,
		PublishedAt:       art.PublishedAt,
		Status:            domain.StatusNew,
	}
}

func prependTag(tag string, tags []string) []string {
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return tags
		}
	}
	out := make([]string, 0, len(tags)+1)
	out = append(out, tag)
	out = append(out, tags...)
	if len(out) > domain.MaxTags {
		out = out[:domain.MaxTags]
	}
	return out
}

func unixToTime(sec int64) time.Time {
	if sec == 0 {
		return time.Now().UTC()
	}
	return time.Unix(sec, 0).UTC()
}

func repoName(repo string) string {
	if i := strings.IndexByte(repo, '/'); i >= 0 {
		return repo[i+1:]
	}
	return repo
}
