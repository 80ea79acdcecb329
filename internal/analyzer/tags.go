package analyzer

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Tag extraction runs all keyword sets through a single Aho-Corasick
// automaton so the text is scanned once regardless of table size. The output
// order is still the keyword-list concatenation order (technology, business,
// problem types), matching is substring rather than word-boundary, and the
// result is capped at maxTags.
const maxTags = 5

var (
	tagKeywords      = concatKeywords(techKeywords, businessKeywords, problemKeywords)
	tagMatcher       = ahocorasick.NewStringMatcher(tagKeywords)
	indicatorMatcher = ahocorasick.NewStringMatcher(problemIndicators)
)

func concatKeywords(sets ...[]string) []string {
	var all []string
	for _, set := range sets {
		all = append(all, set...)
	}
	return all
}

// ExtractTags returns up to five keyword tags found in the text.
func (a *Analyzer) ExtractTags(title, body string) []string {
	text := strings.ToLower(title + " " + body)

	hits := tagMatcher.Match([]byte(text))
	matched := make(map[string]bool, len(hits))
	for _, hit := range hits {
		if hit < len(tagKeywords) {
			matched[tagKeywords[hit]] = true
		}
	}

	tags := make([]string, 0, maxTags)
	seen := make(map[string]bool, maxTags)
	for _, keyword := range tagKeywords {
		if !matched[keyword] || seen[keyword] {
			continue
		}
		tags = append(tags, keyword)
		seen[keyword] = true
		if len(tags) == maxTags {
			break
		}
	}

	return tags
}

// FindKeywordMatches returns the problem-indicator phrases present in the
// text, in table order. The result is used for explainability, not ranking.
func (a *Analyzer) FindKeywordMatches(title, body string) []string {
	text := strings.ToLower(title + " " + body)

	hits := indicatorMatcher.Match([]byte(text))
	matched := make(map[string]bool, len(hits))
	for _, hit := range hits {
		if hit < len(problemIndicators) {
			matched[problemIndicators[hit]] = true
		}
	}

	found := make([]string, 0, len(matched))
	for _, indicator := range problemIndicators {
		if matched[indicator] {
			found = append(found, indicator)
		}
	}

	return found
}

// IsProblemText reports whether the text looks like a problem post at all.
// Free-source adapters use this as an ingestion gate.
func (a *Analyzer) IsProblemText(title, body string) bool {
	text := title + " " + body
	for _, p := range problemGatePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
