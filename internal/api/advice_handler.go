package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// --- DTOs for Advice ---
type MealIdeaRequest struct {
	Goal string `json:"goal"`
}

type MealIdeaResponse struct {
	Idea string `json:"idea"`
}

// GetAdvice godoc
// @Summary Get the current coaching advice
// @Tags Advice
// @Produce json
// @Success 200 {object} domain.Advice
// @Router /advice [get]
func (h *CoachingHandler) GetAdvice(c *gin.Context) {
	c.JSON(http.StatusOK, h.coachingService.Snapshot().Advice)
}

// RefreshAdvice godoc
// @Summary Request fresh advice for the current user
// @Description Returns the pending advice immediately; the generated text replaces it when ready.
// @Tags Advice
// @Produce json
// @Success 202 {object} domain.Advice
// @Failure 409 {object} gin.H "Nobody logged in"
// @Router /advice/refresh [post]
func (h *CoachingHandler) RefreshAdvice(c *gin.Context) {
	pending, err := h.coachingService.RefreshAdvice()
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, pending)
}

// MealIdea godoc
// @Summary Suggest a high-protein meal
// @Tags Advice
// @Accept json
// @Produce json
// @Param request body MealIdeaRequest true "Nutrition goal"
// @Success 200 {object} MealIdeaResponse
// @Router /advice/meal [post]
func (h *CoachingHandler) MealIdea(c *gin.Context) {
	var req MealIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, MealIdeaResponse{Idea: h.coachingService.MealIdea(c.Request.Context(), req.Goal)})
}
