package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heinicus/mobile-mechanic-api/internal/service"
	"github.com/heinicus/mobile-mechanic-api/pkg/response"
)

// AnalyticsHandler serves dispatch dashboards.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new handler.
func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc}
}

// StatusBreakdown godoc
// @Summary Jobs per lifecycle status
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/status [get]
func (h *AnalyticsHandler) StatusBreakdown(c *gin.Context) {
	breakdown, cached, err := h.service.StatusBreakdown(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, breakdown, map[string]interface{}{"cached": cached})
}

// RevenueByMonth godoc
// @Summary Monthly revenue buckets
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/revenue [get]
func (h *AnalyticsHandler) RevenueByMonth(c *gin.Context) {
	months, cached, err := h.service.RevenueByMonth(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, months, map[string]interface{}{"cached": cached})
}

// SystemMetrics godoc
// @Summary Instrumentation snapshot
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /analytics/system [get]
func (h *AnalyticsHandler) SystemMetrics(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.SystemMetrics(), nil)
}
