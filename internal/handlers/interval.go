package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workpulse/backend/internal/apierror"
	"github.com/workpulse/backend/internal/models"
	"github.com/workpulse/backend/internal/service"
)

type IntervalHandler struct {
	intervalService service.IntervalService
}

// NewIntervalHandler creates a new interval handler
func NewIntervalHandler(intervalService service.IntervalService) *IntervalHandler {
	return &IntervalHandler{
		intervalService: intervalService,
	}
}

// CreateInterval handles POST /api/v1/intervals
func (h *IntervalHandler) CreateInterval(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
		return
	}

	var req models.CreateIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		requestID := apierror.GetRequestID(c)
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid request body"))
		return
	}

	interval, err := h.intervalService.CreateInterval(c.Request.Context(), userID.(string), &req)
	if err != nil {
		requestID := apierror.GetRequestID(c)

		if errors.Is(err, service.ErrInvalidUUID) || errors.Is(err, service.ErrNotUUIDv7) {
			apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", req.ID))
			return
		}
		if errors.Is(err, service.ErrFutureTimestamp) {
			apierror.WriteProblem(c, apierror.NewFutureTimestampError(requestID, "id"))
			return
		}

		// PostgreSQL unique violation surfaces as a conflict.
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "23505") {
			apierror.WriteProblem(c, apierror.NewConflictError(requestID, "An interval with this ID already exists"))
			return
		}

		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), err.Error()))
		return
	}

	c.JSON(http.StatusCreated, interval)
}

// GetIntervals handles GET /api/v1/intervals
func (h *IntervalHandler) GetIntervals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	// Parse pagination parameters
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	intervals, err := h.intervalService.GetUserIntervals(c.Request.Context(), userID.(string), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, intervals)
}

// GetInterval handles GET /api/v1/intervals/:id
func (h *IntervalHandler) GetInterval(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	intervalID := c.Param("id")
	interval, err := h.intervalService.GetInterval(c.Request.Context(), userID.(string), intervalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "interval not found"})
		return
	}

	c.JSON(http.StatusOK, interval)
}

// UpdateInterval handles PATCH /api/v1/intervals/:id
func (h *IntervalHandler) UpdateInterval(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	intervalID := c.Param("id")

	var req models.UpdateIntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interval, err := h.intervalService.UpdateInterval(c.Request.Context(), userID.(string), intervalID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "interval not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, interval)
}

// DeleteInterval handles DELETE /api/v1/intervals/:id
func (h *IntervalHandler) DeleteInterval(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	intervalID := c.Param("id")

	if err := h.intervalService.DeleteInterval(c.Request.Context(), userID.(string), intervalID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "interval not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
