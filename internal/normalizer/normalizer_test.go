package normalizer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jonesrussell/trendscout/internal/analyzer"
	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
)

func newTestNormalizer() *Normalizer {
	az := analyzer.New(logger.NewNop(), analyzer.Config{Version: "test"})
	return New(logger.NewNop(), az)
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"entities", "a &amp; b", "a & b"},
		{"plain", "no markup here", "no markup here"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanFeedText(t *testing.T) {
	in := "<![CDATA[ Solar Gadgets (TrendHunter.com)]]>"
	if got := CleanFeedText(in); got != "Solar Gadgets" {
		t.Errorf("CleanFeedText = %q, want %q", got, "Solar Gadgets")
	}
}

func TestExcerpt_Truncation(t *testing.T) {
	long := strings.Repeat("word ", 100) // 500 chars
	got := Excerpt(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
	if len(got) > maxBodyLength+3 {
		t.Errorf("expected at most %d chars plus ellipsis, got %d", maxBodyLength, len(got))
	}

	short := "already short"
	if Excerpt(short) != short {
		t.Error("short text must pass through unchanged")
	}
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// A run of multi-byte runes straddling the cap must not be split.
	s := strings.Repeat("é", 200) // 400 bytes
	got := Truncate(s)
	if !strings.HasSuffix(got, "é") {
		t.Error("expected cut on a rune boundary")
	}
	if len(got) > maxBodyLength {
		t.Errorf("expected at most %d bytes, got %d", maxBodyLength, len(got))
	}
}

func TestExtractImageURL(t *testing.T) {
	html := `<p>text</p><img alt="x" src="https://example.com/pic.jpg"><img src="https://example.com/second.jpg">`
	if got := ExtractImageURL(html); got != "https://example.com/pic.jpg" {
		t.Errorf("expected first img src, got %q", got)
	}
	if got := ExtractImageURL("<p>no images</p>"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFromReddit(t *testing.T) {
	n := newTestNormalizer()

	rec := n.FromReddit(context.Background(), RedditPost{
		ID:          "abc123",
		Title:       "Can't get my payment API to work",
		SelfText:    "The stripe integration keeps failing and customers are leaving.",
		Author:      "builder42",
		Subreddit:   "entrepreneur",
		Ups:         55,
		NumComments: 12,
		Permalink:   "/r/entrepreneur/comments/abc123",
		CreatedUTC:  1756600000,
	})

	if rec.Platform != domain.PlatformReddit || rec.PlatformID != "abc123" {
		t.Errorf("unexpected identity: %s %s", rec.Platform, rec.PlatformID)
	}
	if rec.Category != domain.CategoryBusiness {
		t.Errorf("expected subreddit-derived category Business, got %q", rec.Category)
	}
	if rec.Tags[0] != "entrepreneur" {
		t.Errorf("expected subreddit as first tag, got %v", rec.Tags)
	}
	if len(rec.Tags) > domain.MaxTags {
		t.Errorf("tag cap exceeded: %v", rec.Tags)
	}
	if rec.SourceURL != "https://reddit.com/r/entrepreneur/comments/abc123" {
		t.Errorf("unexpected source url %q", rec.SourceURL)
	}
	if rec.EngagementMetrics.Upvotes != 55 {
		t.Errorf("expected upvotes carried over, got %d", rec.EngagementMetrics.Upvotes)
	}
	if rec.PublishedAt.Unix() != 1756600000 {
		t.Errorf("unexpected published time %v", rec.PublishedAt)
	}
	if rec.Status != domain.StatusNew {
		t.Errorf("expected status new, got %q", rec.Status)
	}
}

func TestFromReddit_EmptySelfTextFallsBackToTitle(t *testing.T) {
	n := newTestNormalizer()

	rec := n.FromReddit(context.Background(), RedditPost{
		ID:    "x",
		Title: "How do I fix this?",
	})
	if rec.Body != rec.Title {
		t.Errorf("expected body to fall back to title, got %q", rec.Body)
	}
}

func TestFromStackExchange(t *testing.T) {
	n := newTestNormalizer()

	q := StackExchangeQuestion{
		QuestionID:   42,
		Title:        "Why does my service fail to start?",
		Body:         "<p>The unit enters a crash loop.</p>",
		Link:         "https://serverfault.com/q/42",
		Score:        7,
		AnswerCount:  3,
		ViewCount:    900,
		CreationDate: 1756600000,
		Tags:         []string{"systemd", "linux", "boot", "overflowing"},
	}
	q.Owner.DisplayName = "opsperson"
	q.Owner.Reputation = 1234

	rec := n.FromStackExchange(context.Background(), q, "serverfault", domain.CategoryTechnology)

	if rec.PlatformID != "se-serverfault-42" {
		t.Errorf("unexpected platform id %q", rec.PlatformID)
	}
	if rec.Platform != domain.PlatformStackOverflow {
		t.Errorf("unexpected platform %q", rec.Platform)
	}
	if strings.Contains(rec.Body, "<p>") {
		t.Errorf("expected HTML stripped from body, got %q", rec.Body)
	}
	// Three question tags survive, the site slug is appended last.
	want := []string{"systemd", "linux", "boot", "serverfault"}
	if len(rec.Tags) != len(want) {
		t.Fatalf("expected tags %v, got %v", want, rec.Tags)
	}
	for i := range want {
		if rec.Tags[i] != want[i] {
			t.Fatalf("expected tags %v, got %v", want, rec.Tags)
		}
	}
	if rec.Author.Username != "opsperson" || rec.Author.Reputation != 1234 {
		t.Errorf("unexpected author %+v", rec.Author)
	}
	if rec.EngagementMetrics.Views != 900 {
		t.Errorf("expected views carried over, got %d", rec.EngagementMetrics.Views)
	}
}

func TestFromStackExchange_AnonymousOwner(t *testing.T) {
	n := newTestNormalizer()

	rec := n.FromStackExchange(context.Background(), StackExchangeQuestion{
		QuestionID: 1,
		Title:      "Problem with my install",
	}, "askubuntu", domain.CategoryTechnology)

	if rec.Author.Username != "Stack Exchange User" {
		t.Errorf("expected placeholder username, got %q", rec.Author.Username)
	}
	if rec.Author.ProfileURL != "https://askubuntu.stackexchange.com" {
		t.Errorf("expected site fallback profile url, got %q", rec.Author.ProfileURL)
	}
}

func TestFromGitHubIssue(t *testing.T) {
	n := newTestNormalizer()

	is := GitHubIssue{
		ID:       9001,
		Number:   512,
		Title:    "Build broken on linux",
		Body:     "The release workflow errors out on ubuntu runners.",
		HTMLURL:  "https://github.com/nodejs/node/issues/512",
		Comments: 8,
	}
	is.User.Login = "octocat"
	is.User.HTMLURL = "https://github.com/octocat"
	is.Labels = []struct {
		Name string `json:"name"`
	}{{Name: "bug"}, {Name: "ci"}, {Name: "linux"}, {Name: "v8"}}
	is.Reactions.PlusOne = 14

	rec := n.FromGitHubIssue(context.Background(), is, "nodejs/node")

	if rec.PlatformID != "gh-9001" {
		t.Errorf("unexpected platform id %q", rec.PlatformID)
	}
	if rec.Platform != domain.PlatformGitHub {
		t.Errorf("unexpected platform %q", rec.Platform)
	}
	// github, repo name, then at most three labels.
	want := []string{"github", "node", "bug", "ci", "linux"}
	for i := range want {
		if rec.Tags[i] != want[i] {
			t.Fatalf("expected tags %v, got %v", want, rec.Tags)
		}
	}
	if rec.EngagementMetrics.Upvotes != 14 || rec.EngagementMetrics.Comments != 8 {
		t.Errorf("unexpected metrics %+v", rec.EngagementMetrics)
	}
}

func TestFromHackerNews(t *testing.T) {
	n := newTestNormalizer()

	rec := n.FromHackerNews(context.Background(), HackerNewsStory{
		ID:          123456,
		Title:       "Ask HN: Why can't I find a good invoicing tool?",
		By:          "founder",
		Score:       210,
		Descendants: 88,
		Time:        1756600000,
	})

	if rec.PlatformID != "hn-123456" {
		t.Errorf("unexpected platform id %q", rec.PlatformID)
	}
	if rec.SourceURL != "https://news.ycombinator.com/item?id=123456" {
		t.Errorf("unexpected source url %q", rec.SourceURL)
	}
	if rec.Body != rec.Title {
		t.Errorf("expected text-less story to use title as body, got %q", rec.Body)
	}
	if rec.EngagementMetrics.Upvotes != 210 || rec.EngagementMetrics.Comments != 88 {
		t.Errorf("unexpected metrics %+v", rec.EngagementMetrics)
	}
}

func TestFromDevTo(t *testing.T) {
	n := newTestNormalizer()

	art := DevToArticle{
		ID:                   777,
		Title:                "Help: my React app won't build",
		Description:          "Vite fails with an opaque error after upgrading.",
		URL:                  "https://dev.to/dev/help-777",
		PublicReactionsCount: 30,
		CommentsCount:        5,
		TagList:              []string{"react", "vite", "webdev", "help", "javascript"},
		PublishedAt:          time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC),
	}
	art.User.Username = "dev"

	rec := n.FromDevTo(context.Background(), art)

	if rec.PlatformID != "devto-777" {
		t.Errorf("unexpected platform id %q", rec.PlatformID)
	}
	if len(rec.Tags) != 4 {
		t.Errorf("expected tag list capped at 4, got %v", rec.Tags)
	}
	if rec.Author.ProfileURL != "https://dev.to/dev" {
		t.Errorf("unexpected profile url %q", rec.Author.ProfileURL)
	}
	if !rec.PublishedAt.Equal(art.PublishedAt) {
		t.Errorf("unexpected published time %v", rec.PublishedAt)
	}
}

func TestFromFeedItem(t *testing.T) {
	n := newTestNormalizer()

	rec := n.FromFeedItem(context.Background(), FeedItem{
		Title:       "<![CDATA[ Sustainable Packaging Gains (TrendHunter.com)]]>",
		Description: `<p>Brands adopt seaweed-based wrap.</p><img src="https://example.com/wrap.jpg">`,
		Link:        "https://www.trendhunter.com/trends/wrap",
		Source:      "TrendHunter",
		Published:   time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
	}, 0)

	if rec.Platform != domain.PlatformRSS {
		t.Errorf("unexpected platform %q", rec.Platform)
	}
	if rec.Title != "Sustainable Packaging Gains" {
		t.Errorf("expected cleaned title, got %q", rec.Title)
	}
	// Trend records are keyed by slug, not feed GUID.
	if rec.PlatformID != rec.Slug {
		t.Errorf("expected slug identity, got %q vs %q", rec.PlatformID, rec.Slug)
	}
	if rec.ImageURL != "https://example.com/wrap.jpg" {
		t.Errorf("expected image scraped from description, got %q", rec.ImageURL)
	}
	if rec.EngagementMetrics.Upvotes != 95 {
		t.Errorf("expected synthesized popularity 95 at index 0, got %d", rec.EngagementMetrics.Upvotes)
	}
	if len(rec.Tags) < 2 {
		t.Errorf("expected at least two tags, got %v", rec.Tags)
	}
}

func TestFromFeedItem_PopularityDecay(t *testing.T) {
	n := newTestNormalizer()

	it := FeedItem{Title: "Some Trend", Description: "Short blurb."}
	third := n.FromFeedItem(context.Background(), it, 3)
	if third.EngagementMetrics.Upvotes != 80 {
		t.Errorf("expected popularity 80 at index 3, got %d", third.EngagementMetrics.Upvotes)
	}

	deep := n.FromFeedItem(context.Background(), it, 50)
	if deep.EngagementMetrics.Upvotes != 0 {
		t.Errorf("expected popularity floor 0, got %d", deep.EngagementMetrics.Upvotes)
	}
}

func TestFeedCategoryAndTags(t *testing.T) {
	category, tags := feedCategoryAndTags("AI Health Gadgets", "Wearables push wellness research forward.")
	if category != domain.CategoryHealth {
		t.Errorf("expected first matching category Health, got %q", category)
	}
	if tags[0] != "Health" {
		t.Errorf("expected matched category as first tag, got %v", tags)
	}
	if len(tags) > domain.MaxTags {
		t.Errorf("tag cap exceeded: %v", tags)
	}

	category, tags = feedCategoryAndTags("Quiet Product", "Nothing that matches keyword lists.")
	if category != domain.CategoryTechnology {
		t.Errorf("expected default Technology, got %q", category)
	}
	if len(tags) != 2 || tags[0] != "Trending" || tags[1] != "Innovation" {
		t.Errorf("expected Trending/Innovation fallback, got %v", tags)
	}
}

func TestIsProblem(t *testing.T) {
	n := newTestNormalizer()

	if !n.IsProblem("How do I deploy this?", "") {
		t.Error("expected question to pass the gate")
	}
	if n.IsProblem("Show HN: my side project", "built over a weekend") {
		t.Error("expected announcement to fail the gate")
	}
}
