// Package api exposes the HTTP query surface over the record store.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/trendscout/internal/analyzer"
	"github.com/jonesrussell/trendscout/internal/ingest"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/store"
)

// Handler handles HTTP requests for the records API.
type Handler struct {
	store    *store.Store
	analyzer *analyzer.Analyzer
	pipeline *ingest.Pipeline
	log      logger.Logger
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, az *analyzer.Analyzer, p *ingest.Pipeline, log logger.Logger) *Handler {
	return &Handler{
		store:    st,
		analyzer: az,
		pipeline: p,
		log:      log,
	}
}

// ListRecords handles GET /api/v1/records.
func (h *Handler) ListRecords(c *gin.Context) {
	q := parseListQuery(c)

	records := h.store.Find(q.filter, q.opts)
	total := h.store.Count(q.filter)

	c.JSON(http.StatusOK, RecordsListResponse{
		Records: records,
		Total:   total,
		Skip:    q.opts.Skip,
		Limit:   q.opts.Limit,
	})
}

// HighPriority handles GET /api/v1/records/high-priority.
func (h *Handler) HighPriority(c *gin.Context) {
	records := h.store.FindHighPriority()
	c.JSON(http.StatusOK, RecordsListResponse{
		Records: records,
		Total:   len(records),
		Limit:   len(records),
	})
}

// GetRecord handles GET /api/v1/records/:id.
func (h *Handler) GetRecord(c *gin.Context) {
	id := c.Param("id")
	record := h.store.Get(id)
	if record == nil {
		c.JSON(http.StatusNotFound, errorBody("record not found"))
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateRecordStatus handles PATCH /api/v1/records/:id/status.
func (h *Handler) UpdateRecordStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	patch := store.Patch{Status: &req.Status}
	if req.Notes != "" {
		patch.Notes = &req.Notes
	}

	record := h.store.Update(c.Param("id"), patch)
	if record == nil {
		c.JSON(http.StatusNotFound, errorBody("record not found"))
		return
	}

	h.log.Info("record status updated",
		logger.String("id", record.ID),
		logger.String("status", string(record.Status)),
	)
	c.JSON(http.StatusOK, record)
}

// DeleteRecord handles DELETE /api/v1/records/:id.
func (h *Handler) DeleteRecord(c *gin.Context) {
	id := c.Param("id")
	if !h.store.Delete(id) {
		c.JSON(http.StatusNotFound, errorBody("record not found"))
		return
	}
	h.log.Info("record deleted", logger.String("id", id))
	c.Status(http.StatusNoContent)
}

// GetStats handles GET /api/v1/stats.
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetStats())
}

// GetCategories handles GET /api/v1/categories.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: h.store.Distinct("category"),
	})
}

// Analyze handles POST /api/v1/analyze. It scores the submitted content
// without storing anything.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	analysis := h.analyzer.Analyze(c.Request.Context(), analyzer.Input{
		Title:     req.Title,
		Body:      req.Body,
		Platform:  req.Platform,
		Metrics:   req.Metrics,
		Subreddit: req.Subreddit,
	})
	c.JSON(http.StatusOK, analysis)
}

// Ingest handles POST /api/v1/ingest, triggering a synchronous pipeline run.
func (h *Handler) Ingest(c *gin.Context) {
	result, err := h.pipeline.Run(c.Request.Context())
	if err != nil {
		h.log.Error("ingest run failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result)
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"records": h.store.Count(store.Filter{}),
	})
}
