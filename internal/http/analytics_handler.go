package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scientist-twin/internal/service"
)

// AnalyticsHandler serves the aggregate feedback board.
type AnalyticsHandler struct {
	logger    *zap.Logger
	analytics *service.AnalyticsService
}

func NewAnalyticsHandler(logger *zap.Logger, analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{logger: logger, analytics: analytics}
}

// Summary handles GET /analytics.
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	if h.analytics == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "analytics not configured"})
		return
	}

	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		h.logger.Error("analytics summary failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load analytics"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
