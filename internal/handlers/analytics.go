package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/finsight/backend/internal/analytics"
	"github.com/finsight/backend/internal/apierror"
	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// periodParams resolves the period_type and period query parameters,
// defaulting to the current monthly period.
func periodParams(c *gin.Context) (string, models.PeriodType, bool) {
	periodType := models.PeriodType(c.DefaultQuery("period_type", string(models.PeriodMonthly)))
	if !periodType.Valid() {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewInvalidPeriodError(requestID, "unknown period type '"+string(periodType)+"'"))
		return "", "", false
	}

	period := c.Query("period")
	if period == "" {
		period = analytics.CurrentPeriod(periodType, time.Now())
	}

	return period, periodType, true
}

// GetSnapshot handles GET /api/v1/analytics/snapshot
func (h *AnalyticsHandler) GetSnapshot(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	period, periodType, ok := periodParams(c)
	if !ok {
		return
	}

	snapshot, err := h.analyticsService.GetSnapshot(c.Request.Context(), userID, period, periodType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// ComputeSnapshot handles POST /api/v1/analytics/snapshot
// Forces a recompute even when a stored snapshot exists.
func (h *AnalyticsHandler) ComputeSnapshot(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	period, periodType, ok := periodParams(c)
	if !ok {
		return
	}

	snapshot, err := h.analyticsService.ComputeSnapshot(c.Request.Context(), userID, period, periodType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *AnalyticsHandler) writeError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	if errors.Is(err, service.ErrInvalidPeriod) {
		apierror.WriteProblem(c, apierror.NewInvalidPeriodError(requestID, err.Error()))
		return
	}
	logger.Ctx(c.Request.Context()).Error("analytics request failed", logger.Err(err))
	apierror.WriteProblem(c, apierror.NewInternalError(requestID))
}
