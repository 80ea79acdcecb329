package normalizer

import "time"

// Source payload shapes. Each mirrors the fields consumed from the upstream
// API response; adapters decode into these and hand them to the Normalizer.

// RedditPost is one entry from a subreddit listing.
type RedditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	SelfText    string  `json:"selftext"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	Ups         int     `json:"ups"`
	NumComments int     `json:"num_comments"`
	Permalink   string  `json:"permalink"`
	CreatedUTC  float64 `json:"created_utc"`
}

// StackExchangeQuestion is one item from the Stack Exchange questions API.
type StackExchangeQuestion struct {
	QuestionID   int64    `json:"question_id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"` // HTML
	Link         string   `json:"link"`
	Score        int      `json:"score"`
	AnswerCount  int      `json:"answer_count"`
	ViewCount    int      `json:"view_count"`
	CreationDate int64    `json:"creation_date"`
	Tags         []string `json:"tags"`
	Owner        struct {
		DisplayName string `json:"display_name"`
		Reputation  int    `json:"reputation"`
		Link        string `json:"link"`
	} `json:"owner"`
}

// GitHubIssue is one issue from the GitHub issues API.
type GitHubIssue struct {
	ID       int64  `json:"id"`
	Number   int    `json:"number"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	HTMLURL  string `json:"html_url"`
	Comments int    `json:"comments"`
	User     struct {
		Login   string `json:"login"`
		HTMLURL string `json:"html_url"`
	} `json:"user"`
	Labels []struct {
		Name string `json:"name"`
	} `json:"labels"`
	Reactions struct {
		PlusOne int `json:"+1"`
	} `json:"reactions"`
	CreatedAt time.Time `json:"created_at"`
}

// HackerNewsStory is one item from the Hacker News item API.
type HackerNewsStory struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Text        string `json:"text"`
	By          string `json:"by"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Time        int64  `json:"time"`
}

// DevToArticle is one article from the Dev.to articles API.
type DevToArticle struct {
	ID                   int64     `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	URL                  string    `json:"url"`
	PublicReactionsCount int       `json:"public_reactions_count"`
	CommentsCount        int       `json:"comments_count"`
	TagList              []string  `json:"tag_list"`
	PublishedAt          time.Time `json:"published_at"`
	User                 struct {
		Username string `json:"username"`
	} `json:"user"`
}

// FeedItem is one entry from an RSS or Atom feed, already reduced to the
// fields the normalizer consumes.
type FeedItem struct {
	Title       string
	Description string // HTML
	Link        string
	ImageURL    string
	Source      string
	Published   time.Time
}
