// Package store implements the in-memory record store. It is the system of
// record for the lifetime of the process; nothing is persisted.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/trendscout/internal/domain"
)

// High-priority thresholds.
const (
	highPriorityUrgency     = 7.0
	highPriorityOpportunity = 7.0
)

// Store holds records behind a single lock. Every operation is one
// synchronous pass over the slice, so operations are atomic with respect to
// each other. Construct one per process and pass it by reference; there is
// no package-level instance.
type Store struct {
	mu      sync.RWMutex
	records []*domain.Record
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SortField names a sortable record field.
type SortField string

// Sortable fields.
const (
	SortByPublishedAt  SortField = "published_at"
	SortByDiscoveredAt SortField = "discovered_at"
	SortByUrgency      SortField = "urgency_score"
	SortByOpportunity  SortField = "opportunity_score"
	SortBySentiment    SortField = "sentiment_score"
	SortByTitle        SortField = "title"
)

// FindOptions control ordering and pagination. Sort, skip and limit are
// applied in that order.
type FindOptions struct {
	SortBy   SortField
	SortDesc bool
	Skip     int
	Limit    int // 0 means no limit
}

// Create assigns a fresh id and discovery timestamp, appends the record and
// returns the stored copy. It never rejects duplicates; callers that need
// dedup check for existence first.
func (s *Store) Create(r domain.Record) *domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	r.ID = uuid.NewString()
	r.DiscoveredAt = now
	if r.Status == "" {
		r.Status = domain.StatusNew
	}

	stored := r
	s.records = append(s.records, &stored)
	return copyRecord(&stored)
}

// Find returns all records matching the filter, with optional sort, skip and
// limit applied in that order. The returned records are copies.
func (s *Store) Find(f Filter, opts ...FindOptions) []*domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy before sorting: once the lock is released the live records may be
	// mutated by Update, so nothing past this method may touch them.
	matched := make([]*domain.Record, 0)
	for _, r := range s.records {
		if f.Matches(r) {
			matched = append(matched, copyRecord(r))
		}
	}

	if len(opts) > 0 {
		matched = applyOptions(matched, opts[0])
	}
	return matched
}

// FindOne returns the first record matching the filter, or nil.
func (s *Store) FindOne(f Filter) *domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if f.Matches(r) {
			return copyRecord(r)
		}
	}
	return nil
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id string) *domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r := s.byID(id); r != nil {
		return copyRecord(r)
	}
	return nil
}

// Update shallow-merges the patch into the record with the given id and
// returns the updated copy, or nil if no such record exists.
func (s *Store) Update(id string, p Patch) *domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.byID(id)
	if r == nil {
		return nil
	}

	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Body != nil {
		r.Body = *p.Body
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Tags != nil {
		r.Tags = *p.Tags
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
	if p.UrgencyScore != nil {
		r.UrgencyScore = *p.UrgencyScore
	}
	if p.OpportunityScore != nil {
		r.OpportunityScore = *p.OpportunityScore
	}
	if p.SentimentScore != nil {
		r.SentimentScore = *p.SentimentScore
	}
	if p.Metrics != nil {
		r.EngagementMetrics = *p.Metrics
	}

	now := time.Now()
	r.LastAnalyzed = &now

	return copyRecord(r)
}

// Delete removes the record with the given id. It reports whether a record
// was removed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of records matching the filter.
func (s *Store) Count(f Filter) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.records {
		if f.Matches(r) {
			count++
		}
	}
	return count
}

// Distinct returns the distinct non-empty values of a field, in first-seen
// order. Supported fields: category, platform, status.
func (s *Store) Distinct(field string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range s.records {
		var v string
		switch field {
		case "category":
			v = string(r.Category)
		case "platform":
			v = string(r.Platform)
		case "status":
			v = string(r.Status)
		}
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// Stats aggregates counts by platform, category and status plus running
// score averages. Computed by full scan; fine at the scale this store serves.
type Stats struct {
	Total          int            `json:"total"`
	ByPlatform     map[string]int `json:"by_platform"`
	ByCategory     map[string]int `json:"by_category"`
	ByStatus       map[string]int `json:"by_status"`
	AvgUrgency     float64        `json:"avg_urgency"`
	AvgOpportunity float64        `json:"avg_opportunity"`
}

// GetStats computes aggregate statistics over the whole collection.
func (s *Store) GetStats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		ByPlatform: make(map[string]int),
		ByCategory: make(map[string]int),
		ByStatus:   make(map[string]int),
	}

	var totalUrgency, totalOpportunity float64
	for _, r := range s.records {
		stats.ByPlatform[string(r.Platform)]++
		stats.ByCategory[string(r.Category)]++
		stats.ByStatus[string(r.Status)]++
		totalUrgency += r.UrgencyScore
		totalOpportunity += r.OpportunityScore
	}
	stats.Total = len(s.records)
	if stats.Total > 0 {
		stats.AvgUrgency = totalUrgency / float64(stats.Total)
		stats.AvgOpportunity = totalOpportunity / float64(stats.Total)
	}
	return stats
}

// FindHighPriority returns records with urgency and opportunity both at or
// above 7, sorted descending by the sum of the two scores. The sort is
// stable, so ties keep insertion order.
func (s *Store) FindHighPriority() []*domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*domain.Record, 0)
	for _, r := range s.records {
		if r.UrgencyScore >= highPriorityUrgency && r.OpportunityScore >= highPriorityOpportunity {
			matched = append(matched, copyRecord(r))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UrgencyScore+matched[i].OpportunityScore >
			matched[j].UrgencyScore+matched[j].OpportunityScore
	})
	return matched
}

// byID must be called with the lock held.
func (s *Store) byID(id string) *domain.Record {
	for _, r := range s.records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func applyOptions(records []*domain.Record, opts FindOptions) []*domain.Record {
	if opts.SortBy != "" {
		sort.SliceStable(records, func(i, j int) bool {
			if opts.SortDesc {
				return lessByField(records[j], records[i], opts.SortBy)
			}
			return lessByField(records[i], records[j], opts.SortBy)
		})
	}
	if opts.Skip > 0 {
		if opts.Skip >= len(records) {
			return nil
		}
		records = records[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(records) {
		records = records[:opts.Limit]
	}
	return records
}

func lessByField(a, b *domain.Record, field SortField) bool {
	switch field {
	case SortByPublishedAt:
		return a.PublishedAt.Before(b.PublishedAt)
	case SortByDiscoveredAt:
		return a.DiscoveredAt.Before(b.DiscoveredAt)
	case SortByUrgency:
		return a.UrgencyScore < b.UrgencyScore
	case SortByOpportunity:
		return a.OpportunityScore < b.OpportunityScore
	case SortBySentiment:
		return a.SentimentScore < b.SentimentScore
	case SortByTitle:
		return a.Title < b.Title
	default:
		return false
	}
}

// copyRecord returns a defensive copy so callers cannot mutate stored state
// without going through Update.
func copyRecord(r *domain.Record) *domain.Record {
	c := *r
	c.Tags = append([]string(nil), r.Tags...)
	c.KeywordMatches = append([]string(nil), r.KeywordMatches...)
	if r.LastAnalyzed != nil {
		t := *r.LastAnalyzed
		c.LastAnalyzed = &t
	}
	return &c
}
