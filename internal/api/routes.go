package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		records := v1.Group("/records")
		{
			records.GET("", handler.ListRecords)                     // GET /api/v1/records
			records.GET("/high-priority", handler.HighPriority)      // GET /api/v1/records/high-priority
			records.GET("/:id", handler.GetRecord)                   // GET /api/v1/records/:id
			records.PATCH("/:id/status", handler.UpdateRecordStatus) // PATCH /api/v1/records/:id/status
			records.DELETE("/:id", handler.DeleteRecord)             // DELETE /api/v1/records/:id
		}

		v1.GET("/stats", handler.GetStats)           // GET /api/v1/stats
		v1.GET("/categories", handler.GetCategories) // GET /api/v1/categories
		v1.POST("/analyze", handler.Analyze)         // POST /api/v1/analyze
		v1.POST("/ingest", handler.Ingest)           // POST /api/v1/ingest
	}
}
