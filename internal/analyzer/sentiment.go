package analyzer

import (
	"regexp"
	"strings"
)

// Sentiment bounds.
const (
	minSentiment = -1.0
	maxSentiment = 1.0
)

// Whole-word matchers are compiled once; the word lists are fixed.
var (
	positiveWordPatterns = compileWordPatterns(positiveWords)
	negativeWordPatterns = compileWordPatterns(negativeWords)
)

func compileWordPatterns(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return patterns
}

// ScoreSentiment rates the emotional tone of a post in [-1, 1].
// Every whole-word occurrence of a positive word adds 0.1; every occurrence
// of a negative word subtracts 0.1.
func (a *Analyzer) ScoreSentiment(title, body string) float64 {
	text := strings.ToLower(title + " " + body)

	sentiment := 0.0
	for _, p := range positiveWordPatterns {
		sentiment += float64(len(p.FindAllStringIndex(text, -1))) * sentimentStep
	}
	for _, p := range negativeWordPatterns {
		sentiment -= float64(len(p.FindAllStringIndex(text, -1))) * sentimentStep
	}

	return clamp(sentiment, minSentiment, maxSentiment)
}
