package api

import (
	"net/http"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/state"

	"github.com/gin-gonic/gin"
)

// --- DTOs for Workouts ---
type LogSetRequest struct {
	Weight *float64 `json:"weight" binding:"required"`
	Reps   *int     `json:"reps" binding:"required"`
}

// --- Handler Methods for Roster and Workouts ---

// GetClients godoc
// @Summary List the coach's clients
// @Tags Clients
// @Produce json
// @Success 200 {array} domain.User
// @Router /clients [get]
func (h *CoachingHandler) GetClients(c *gin.Context) {
	snap := h.coachingService.Snapshot()
	if snap.Clients == nil {
		c.JSON(http.StatusOK, []domain.User{})
		return
	}
	c.JSON(http.StatusOK, snap.Clients)
}

// GetWorkouts godoc
// @Summary List a client's workouts
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {array} domain.Workout
// @Failure 404 {object} gin.H "Client not found"
// @Router /clients/{clientId}/workouts [get]
func (h *CoachingHandler) GetWorkouts(c *gin.Context) {
	clientID := c.Param("clientId")
	snap := h.coachingService.Snapshot()
	if snap.ClientIndex(clientID) < 0 {
		abortWithError(c, http.StatusNotFound, "Client not found.")
		return
	}
	workouts := snap.Workouts[clientID]
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// GetCurrentWorkout godoc
// @Summary Get the workout shown on a client's dashboard
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H "Client not found or no workout assigned"
// @Router /clients/{clientId}/workouts/current [get]
func (h *CoachingHandler) GetCurrentWorkout(c *gin.Context) {
	clientID := c.Param("clientId")
	snap := h.coachingService.Snapshot()
	if snap.ClientIndex(clientID) < 0 {
		abortWithError(c, http.StatusNotFound, "Client not found.")
		return
	}
	workout, ok := state.CurrentWorkout(snap, clientID)
	if !ok {
		abortWithError(c, http.StatusNotFound, "No workout assigned.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// ToggleExercise godoc
// @Summary Toggle an exercise's completion
// @Tags Clients
// @Produce json
// @Param clientId path string true "Client ID"
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Success 200 {object} domain.Workout "The updated workout"
// @Failure 404 {object} gin.H "Client, workout or exercise not found"
// @Router /clients/{clientId}/workouts/{workoutId}/exercises/{exerciseId}/toggle [post]
func (h *CoachingHandler) ToggleExercise(c *gin.Context) {
	clientID, workoutID := c.Param("clientId"), c.Param("workoutId")
	snap, err := h.coachingService.ToggleExercise(clientID, workoutID, c.Param("exerciseId"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	h.respondWithWorkout(c, snap, clientID, workoutID)
}

// LogSet godoc
// @Summary Log a performed set
// @Tags Clients
// @Accept json
// @Produce json
// @Param clientId path string true "Client ID"
// @Param workoutId path string true "Workout ID"
// @Param exerciseId path string true "Exercise ID"
// @Param set body LogSetRequest true "Weight and reps"
// @Success 200 {object} domain.Workout "The updated workout"
// @Failure 400 {object} gin.H "Invalid weight or reps"
// @Failure 404 {object} gin.H "Client, workout or exercise not found"
// @Router /clients/{clientId}/workouts/{workoutId}/exercises/{exerciseId}/sets [post]
func (h *CoachingHandler) LogSet(c *gin.Context) {
	var req LogSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clientID, workoutID := c.Param("clientId"), c.Param("workoutId")
	snap, err := h.coachingService.LogSet(clientID, workoutID, c.Param("exerciseId"), *req.Weight, *req.Reps)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	h.respondWithWorkout(c, snap, clientID, workoutID)
}

func (h *CoachingHandler) respondWithWorkout(c *gin.Context, snap domain.AppState, clientID, workoutID string) {
	for _, w := range snap.Workouts[clientID] {
		if w.ID == workoutID {
			c.JSON(http.StatusOK, w)
			return
		}
	}
	abortWithError(c, http.StatusNotFound, "Workout not found.")
}
