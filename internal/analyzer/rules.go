// Package analyzer provides heuristic scoring and tagging of ingested content.
// rules.go holds the fixed rule tables the scorers consume. Each table is an
// ordered list of (pattern, weight) pairs so individual entries can be tested
// independently of the scoring functions.
package analyzer

import "regexp"

// Pattern weights per indicator category.
const (
	weightTimeSensitive     = 2.0
	weightEmotionalDistress = 1.5
	weightBusinessImpact    = 1.0
	weightWillingnessToPay  = 1.5
	weightCompetitionGap    = 2.0
	weightScale             = 1.0
	weightValue             = 1.0
)

// weightedPattern pairs a compiled pattern with the score it contributes.
// A pattern contributes its weight once per text, not per occurrence.
type weightedPattern struct {
	pattern *regexp.Regexp
	weight  float64
}

func newTable(weight float64, exprs ...string) []weightedPattern {
	table := make([]weightedPattern, 0, len(exprs))
	for _, expr := range exprs {
		table = append(table, weightedPattern{
			pattern: regexp.MustCompile(`(?i)` + expr),
			weight:  weight,
		})
	}
	return table
}

// Time-sensitive indicators (high weight).
var timeSensitivePatterns = newTable(weightTimeSensitive,
	`urgent`, `asap`, `immediately`, `deadline`,
	`breaking`, `critical`, `emergency`, `quickly`,
	`soon as possible`, `time sensitive`, `rush`,
)

// Emotional distress indicators (medium weight).
var emotionalDistressPatterns = newTable(weightEmotionalDistress,
	`desperate`, `frustrated`, `stuck`, `blocked`,
	`can't work`, `losing money`, `clients waiting`,
	`production down`, `site is down`, `not working`,
	`broken`, `failing`, `crashing`,
)

// Business impact indicators (lower weight).
var businessImpactPatterns = newTable(weightBusinessImpact,
	`revenue`, `customers`, `business`, `sales`,
	`launch`, `live`, `production`, `deadline`,
)

// Willingness-to-pay indicators.
var willingnessToPayPatterns = newTable(weightWillingnessToPay,
	`would pay`, `willing to pay`, `looking for paid`,
	`budget for`, `hire someone`, `freelancer`,
	`consultant`, `service`, `solution`, `tool`,
	`software`, `platform`, `app`,
)

// Competition gap indicators - nobody has solved this yet.
var competitionGapPatterns = newTable(weightCompetitionGap,
	`no solution`, `doesn't exist`, `can't find`,
	`no tools for`, `nothing works`, `no good`,
	`wish there was`, `if only`, `someone should make`,
	`why isn't there`, `need something`,
)

// Scale indicators - the problem affects more than one person.
var scalePatterns = newTable(weightScale,
	`everyone`, `all of us`, `team`, `company`,
	`multiple`, `many`, `enterprise`, `organization`,
)

// Technology/business value indicators.
var valuePatterns = newTable(weightValue,
	`automation`, `efficiency`, `productivity`,
	`save time`, `streamline`, `optimize`,
	`integrate`, `api`, `workflow`,
)

// Sentiment word lists. Occurrences are counted with whole-word matching;
// each positive hit adds and each negative hit subtracts sentimentStep.
const sentimentStep = 0.1

var positiveWords = []string{
	"great", "awesome", "love", "perfect", "excellent",
	"amazing", "fantastic", "wonderful", "good", "nice",
	"helpful", "useful", "easy", "simple", "works",
}

var negativeWords = []string{
	"hate", "terrible", "awful", "broken", "useless",
	"frustrated", "annoying", "difficult", "hard", "impossible",
	"failing", "error", "bug", "issue", "problem", "struggle",
	"can't", "won't", "doesn't work", "not working",
}

// Tag keyword sets. Scanned in concatenation order: technology first, then
// business, then problem types. Matching is substring, not word-boundary.
var techKeywords = []string{
	"react", "vue", "angular", "javascript", "python", "java", "php",
	"nodejs", "api", "database", "sql", "mongodb", "postgresql",
	"aws", "docker", "kubernetes", "stripe", "payment", "authentication",
}

var businessKeywords = []string{
	"inventory", "crm", "sales", "marketing", "analytics", "reporting",
	"workflow", "automation", "integration", "saas", "subscription",
}

var problemKeywords = []string{
	"performance", "security", "optimization", "integration", "migration",
	"scaling", "monitoring", "testing", "deployment",
}

// problemIndicators are literal phrases that flag a post as describing a
// problem. Matches are reported in list order for explainability.
var problemIndicators = []string{
	"how do i", "can't figure out", "struggling with", "need help",
	"anyone know", "not working", "having trouble", "problem with",
	"issue with", "error", "bug", "failing", "broken",
}

// problemGatePatterns decide whether a free-source payload is worth ingesting
// at all. Broader than problemIndicators on purpose.
var problemGatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)how do i`), regexp.MustCompile(`(?i)how to`),
	regexp.MustCompile(`(?i)can't`), regexp.MustCompile(`(?i)cannot`),
	regexp.MustCompile(`(?i)unable to`), regexp.MustCompile(`(?i)problem`),
	regexp.MustCompile(`(?i)issue`), regexp.MustCompile(`(?i)error`),
	regexp.MustCompile(`(?i)bug`), regexp.MustCompile(`(?i)help`),
	regexp.MustCompile(`(?i)stuck`), regexp.MustCompile(`(?i)struggling`),
	regexp.MustCompile(`(?i)difficulty`), regexp.MustCompile(`(?i)trouble`),
	regexp.MustCompile(`(?i)not working`), regexp.MustCompile(`(?i)doesn't work`),
	regexp.MustCompile(`(?i)failing`), regexp.MustCompile(`(?i)broken`),
}

// Subreddit groups for category mapping. Names are matched lower-cased.
var techSubreddits = []string{"webdev", "programming", "javascript", "react", "nodejs", "python", "devops", "sysadmin"}
var businessSubreddits = []string{"entrepreneur", "smallbusiness", "business", "marketing", "sales"}
var consumerSubreddits = []string{"buyitforlife", "frugal", "deals", "shopping"}
var personalSubreddits = []string{"personalfinance", "productivity", "getmotivated", "selfimprovement"}
var healthSubreddits = []string{"fitness", "health", "nutrition", "mentalhealth"}
