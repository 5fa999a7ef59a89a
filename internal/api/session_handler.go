package api

import (
	"net/http"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

type CoachingHandler struct {
	coachingService service.CoachingService
}

func NewCoachingHandler(coachingService service.CoachingService) *CoachingHandler {
	return &CoachingHandler{coachingService: coachingService}
}

// --- DTOs for Session ---
type SelectRoleRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

type SelectClientRequest struct {
	ClientID string `json:"clientId"` // Empty clears the selection
}

type SessionResponse struct {
	CurrentUser      *domain.User `json:"currentUser"`
	SelectedClientID string       `json:"selectedClientId,omitempty"`
}

func mapSessionToResponse(s domain.AppState) SessionResponse {
	return SessionResponse{CurrentUser: s.CurrentUser(), SelectedClientID: s.SelectedClientID}
}

// --- Handler Methods for Session ---

// GetState godoc
// @Summary Get the full application state
// @Tags State
// @Produce json
// @Success 200 {object} domain.AppState
// @Router /state [get]
func (h *CoachingHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.coachingService.Snapshot())
}

// Undo godoc
// @Summary Restore the previous state snapshot
// @Tags State
// @Produce json
// @Success 200 {object} domain.AppState
// @Failure 409 {object} gin.H "Nothing to undo"
// @Router /state/undo [post]
func (h *CoachingHandler) Undo(c *gin.Context) {
	snap, err := h.coachingService.Undo()
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SelectRole godoc
// @Summary Log in as the coach or a client
// @Description ADMIN logs in as the coach, CLIENT as the first client on the roster.
// @Tags Session
// @Accept json
// @Produce json
// @Param session body SelectRoleRequest true "Role to log in as"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} gin.H "Validation error"
// @Failure 404 {object} gin.H "No user for that role"
// @Router /session [post]
func (h *CoachingHandler) SelectRole(c *gin.Context) {
	var req SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if !req.Role.Valid() {
		abortWithError(c, http.StatusBadRequest, "Role must be ADMIN or CLIENT.")
		return
	}
	snap, err := h.coachingService.SelectRole(req.Role)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSessionToResponse(snap))
}

// Logout godoc
// @Summary Log out
// @Tags Session
// @Success 204
// @Router /session [delete]
func (h *CoachingHandler) Logout(c *gin.Context) {
	if _, err := h.coachingService.Logout(); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectClient godoc
// @Summary Focus the coach on one client
// @Tags Session
// @Accept json
// @Produce json
// @Param selection body SelectClientRequest true "Client ID, empty to clear"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} gin.H "Client not found"
// @Router /session/client [put]
func (h *CoachingHandler) SelectClient(c *gin.Context) {
	var req SelectClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	snap, err := h.coachingService.SelectClient(req.ClientID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSessionToResponse(snap))
}
