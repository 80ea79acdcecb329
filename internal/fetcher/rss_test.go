package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/trendscout/internal/analyzer"
	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>TrendHunter</title>
    <item>
      <title><![CDATA[ Solar Charging Backpacks (TrendHunter.com)]]></title>
      <description>Sustainable packs with built-in panels.</description>
      <link>https://www.trendhunter.com/trends/solar-backpack</link>
      <enclosure url="https://cdn.example.com/pack.jpg" type="image/jpeg" length="1024"/>
      <pubDate>Wed, 01 Jul 2026 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>AI Meal Planners</title>
      <description>Smart apps plan weekly menus.</description>
      <link>https://www.trendhunter.com/trends/meal-planner</link>
    </item>
  </channel>
</rss>`

func newFeedNormalizer() *normalizer.Normalizer {
	log := logger.NewNop()
	return normalizer.New(log, analyzer.New(log, analyzer.Config{Version: "test"}))
}

func TestRSS_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	src := NewRSS(newTestClient(), newFeedNormalizer(), logger.NewNop(), []string{srv.URL})
	assert.Equal(t, "rss", src.Name())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, domain.PlatformRSS, first.Platform)
	assert.Equal(t, "Solar Charging Backpacks", first.Title)
	assert.Equal(t, "https://cdn.example.com/pack.jpg", first.ImageURL)
	assert.Equal(t, "TrendHunter", first.Author.Username)
	assert.Equal(t, 95, first.EngagementMetrics.Upvotes)

	// Second item decays by one step and has no image anywhere.
	assert.Equal(t, 90, records[1].EngagementMetrics.Upvotes)
	assert.Empty(t, records[1].ImageURL)
}

func TestRSS_Fetch_UnreachableFeedSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewRSS(newTestClient(), newFeedNormalizer(), logger.NewNop(), []string{srv.URL})
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRSS_Fetch_MalformedFeedSkipped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("this is not a feed"))
	}))
	defer srv.Close()

	src := NewRSS(newTestClient(), newFeedNormalizer(), logger.NewNop(), []string{srv.URL})
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestToFeedItem_ImagePriority(t *testing.T) {
	published := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)
	entry := &gofeed.Item{
		Title:           "Trend",
		Link:            "https://example.com/trend",
		PublishedParsed: &published,
		Image:           &gofeed.Image{URL: "https://example.com/channel.jpg"},
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://example.com/enclosure.jpg", Type: "image/jpeg"},
		},
	}

	it := toFeedItem(entry, "Example")
	assert.Equal(t, "https://example.com/enclosure.jpg", it.ImageURL)
	assert.Equal(t, published, it.Published)
	assert.Equal(t, "Example", it.Source)

	entry.Enclosures = nil
	it = toFeedItem(entry, "Example")
	assert.Equal(t, "https://example.com/channel.jpg", it.ImageURL)
}
