package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/store"
)

// List query bounds.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// RecordsListResponse is a page of records with pagination metadata.
type RecordsListResponse struct {
	Records []*domain.Record `json:"records"`
	Total   int              `json:"total"`
	Skip    int              `json:"skip"`
	Limit   int              `json:"limit"`
}

// UpdateStatusRequest moves a record to a new lifecycle status.
type UpdateStatusRequest struct {
	Status domain.Status `json:"status" binding:"required,oneof=new analyzed actionable archived"`
	Notes  string        `json:"notes"`
}

// AnalyzeRequest scores a piece of content without storing it.
type AnalyzeRequest struct {
	Title     string                   `json:"title" binding:"required"`
	Body      string                   `json:"body"`
	Platform  domain.Platform          `json:"platform"`
	Subreddit string                   `json:"subreddit"`
	Metrics   domain.EngagementMetrics `json:"metrics"`
}

// CategoriesResponse lists the distinct categories currently in the store.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// listQuery carries the parsed filter, sort and pagination parameters of a
// records listing request.
type listQuery struct {
	filter store.Filter
	opts   store.FindOptions
}

// parseListQuery reads filter and pagination params from the request. Unknown
// values are ignored rather than rejected; the zero filter matches all.
func parseListQuery(c *gin.Context) listQuery {
	var q listQuery

	q.filter = store.Filter{
		Category:   domain.Category(c.Query("category")),
		Platform:   domain.Platform(c.Query("platform")),
		Status:     domain.Status(c.Query("status")),
		Search:     c.Query("search"),
		MinUrgency: parseFloat(c.Query("min_urgency")),
	}
	q.filter.MinOpportunity = parseFloat(c.Query("min_opportunity"))

	q.opts = store.FindOptions{
		SortBy:   store.SortField(c.DefaultQuery("sort_by", string(store.SortByDiscoveredAt))),
		SortDesc: c.DefaultQuery("order", "desc") != "asc",
		Skip:     parseInt(c.Query("skip"), 0),
		Limit:    parseInt(c.Query("limit"), defaultListLimit),
	}
	if q.opts.Limit > maxListLimit {
		q.opts.Limit = maxListLimit
	}
	return q
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// errorBody is the uniform error envelope.
func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}
