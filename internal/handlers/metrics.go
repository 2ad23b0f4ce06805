package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/internal/service"
)

type MetricsHandler struct {
	metricsService service.MetricsService
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(metricsService service.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
	}
}

// report runs the full computation for the authenticated user. An optional
// `date` query overrides the reference date, which keeps responses
// reproducible; `cohort` selects the peer group to compare against.
func (h *MetricsHandler) report(c *gin.Context) (*models.Report, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return nil, false
	}

	cohortKey := c.Query("cohort")

	var (
		report *models.Report
		err    error
	)
	if dateStr := c.Query("date"); dateStr != "" {
		date, perr := models.ParseCivilDate(dateStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return nil, false
		}
		report, err = h.metricsService.GetReportAt(c.Request.Context(), userID.(string), cohortKey, date)
	} else {
		report, err = h.metricsService.GetReport(c.Request.Context(), userID.(string), cohortKey)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, false
	}
	return report, true
}

// GetReport handles GET /api/v1/metrics
func (h *MetricsHandler) GetReport(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetWindows handles GET /api/v1/metrics/windows
func (h *MetricsHandler) GetWindows(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Windows)
}

// GetHeatmap handles GET /api/v1/metrics/heatmap
func (h *MetricsHandler) GetHeatmap(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Heatmap)
}

// GetStreak handles GET /api/v1/metrics/streak
func (h *MetricsHandler) GetStreak(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Streak)
}

// GetCircadian handles GET /api/v1/metrics/circadian
func (h *MetricsHandler) GetCircadian(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Circadian)
}

// GetRecovery handles GET /api/v1/metrics/recovery
func (h *MetricsHandler) GetRecovery(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Recovery)
}

// GetRisk handles GET /api/v1/metrics/risk
func (h *MetricsHandler) GetRisk(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Risk)
}

// GetCohort handles GET /api/v1/metrics/cohort
func (h *MetricsHandler) GetCohort(c *gin.Context) {
	if c.Query("cohort") == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cohort query parameter is required"})
		return
	}

	report, ok := h.report(c)
	if !ok {
		return
	}
	if report.Cohort == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cohort not found"})
		return
	}
	c.JSON(http.StatusOK, report.Cohort)
}

// GetBenchmark handles GET /api/v1/metrics/benchmark
func (h *MetricsHandler) GetBenchmark(c *gin.Context) {
	report, ok := h.report(c)
	if !ok {
		return
	}
	if report.Benchmark == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no benchmark grid configured"})
		return
	}
	c.JSON(http.StatusOK, report.Benchmark)
}
