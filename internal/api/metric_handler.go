package api

import (
	"encoding/json"
	"net/http"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/state"

	"github.com/gin-gonic/gin"
)

// --- DTOs for Metrics ---

// RecordWeightRequest accepts the weight as a JSON number or a numeric string.
type RecordWeightRequest struct {
	Weight json.Number `json:"weight" binding:"required"`
}

// GetMetrics godoc
// @Summary Get a user's metric history
// @Tags Metrics
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.Metric "Chronological history"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/{userId}/metrics [get]
func (h *CoachingHandler) GetMetrics(c *gin.Context) {
	userID := c.Param("userId")
	snap := h.coachingService.Snapshot()
	if _, ok := snap.FindUser(userID); !ok {
		abortWithError(c, http.StatusNotFound, "User not found.")
		return
	}
	metrics := snap.Metrics[userID]
	if metrics == nil {
		metrics = []domain.Metric{}
	}
	c.JSON(http.StatusOK, metrics)
}

// GetLatestMetric godoc
// @Summary Get a user's most recent weigh-in
// @Tags Metrics
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} domain.Metric
// @Failure 404 {object} gin.H "User not found or nothing recorded"
// @Router /users/{userId}/metrics/latest [get]
func (h *CoachingHandler) GetLatestMetric(c *gin.Context) {
	userID := c.Param("userId")
	snap := h.coachingService.Snapshot()
	if _, ok := snap.FindUser(userID); !ok {
		abortWithError(c, http.StatusNotFound, "User not found.")
		return
	}
	metric, ok := state.LatestMetric(snap, userID)
	if !ok {
		abortWithError(c, http.StatusNotFound, "No metrics recorded.")
		return
	}
	c.JSON(http.StatusOK, metric)
}

// RecordWeight godoc
// @Summary Record today's body weight
// @Tags Metrics
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param weighIn body RecordWeightRequest true "Weight"
// @Success 201 {array} domain.Metric "Updated history"
// @Failure 400 {object} gin.H "Invalid weight"
// @Failure 403 {object} gin.H "Clients may only record their own weight"
// @Failure 404 {object} gin.H "User not found"
// @Failure 409 {object} gin.H "Nobody logged in"
// @Router /users/{userId}/metrics [post]
func (h *CoachingHandler) RecordWeight(c *gin.Context) {
	var req RecordWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	userID := c.Param("userId")
	snap, err := h.coachingService.RecordWeight(userID, req.Weight.String())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap.Metrics[userID])
}

// GetTips godoc
// @Summary List coaching tips
// @Tags Content
// @Produce json
// @Success 200 {array} domain.Tip
// @Router /tips [get]
func (h *CoachingHandler) GetTips(c *gin.Context) {
	tips := h.coachingService.Snapshot().Tips
	if tips == nil {
		tips = []domain.Tip{}
	}
	c.JSON(http.StatusOK, tips)
}
