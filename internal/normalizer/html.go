package normalizer

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Body excerpts are capped so list views stay readable.
const maxBodyLength = 300

var (
	cdataMarkers    = regexp.MustCompile(`<!\[CDATA\[\s?|\]\]>`)
	feedSourceCruft = regexp.MustCompile(`\(TrendHunter\.com\)`)
	imgSrcPattern   = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)
)

// StripHTML removes markup and entities, returning the document text.
// Input that fails to parse is returned unescaped with tags left in place;
// callers treat the result as plain text either way.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(html.UnescapeString(s))
	}
	return strings.TrimSpace(doc.Text())
}

// CleanFeedText strips CDATA markers and the feed provider's self-reference
// from a feed title or description.
func CleanFeedText(s string) string {
	s = cdataMarkers.ReplaceAllString(s, "")
	s = feedSourceCruft.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Excerpt strips markup and truncates to the body cap, appending an ellipsis
// when text was dropped.
func Excerpt(s string) string {
	text := StripHTML(CleanFeedText(s))
	if len(text) <= maxBodyLength {
		return text
	}
	return text[:runeBoundary(text, maxBodyLength)] + "..."
}

// Truncate caps plain text at the body limit without an ellipsis.
func Truncate(s string) string {
	if len(s) <= maxBodyLength {
		return s
	}
	return s[:runeBoundary(s, maxBodyLength)]
}

// runeBoundary backs the cut point up so a multi-byte rune is never split.
func runeBoundary(s string, cut int) int {
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return cut
}

// ExtractImageURL pulls the first img src out of an HTML fragment, or "".
func ExtractImageURL(htmlFragment string) string {
	m := imgSrcPattern.FindStringSubmatch(htmlFragment)
	if len(m) > 1 {
		return m[1]
	}
	return ""
}
