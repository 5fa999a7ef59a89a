package api

import (
	"net/http"

	"laplante/coach-app/internal/domain"
	"laplante/coach-app/internal/state"

	"github.com/gin-gonic/gin"
)

// --- DTOs for Chat ---

// SendMessageRequest sends from the current user when both IDs are omitted.
type SendMessageRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`
}

// GetConversation godoc
// @Summary Get a user's messages
// @Description Messages sent or received by viewerId, oldest first. Defaults to the current user.
// @Description With withId, only the messages exchanged between the two users.
// @Tags Messages
// @Produce json
// @Param viewerId query string false "Viewer user ID"
// @Param withId query string false "Other participant"
// @Success 200 {array} domain.ChatMessage
// @Failure 409 {object} gin.H "No viewer and nobody logged in"
// @Router /messages [get]
func (h *CoachingHandler) GetConversation(c *gin.Context) {
	viewerID := c.Query("viewerId")
	if viewerID == "" {
		viewerID = h.coachingService.Snapshot().CurrentUserID
	}
	if viewerID == "" {
		abortWithError(c, http.StatusConflict, "viewerId is required when nobody is logged in.")
		return
	}
	if withID := c.Query("withId"); withID != "" {
		c.JSON(http.StatusOK, state.Thread(h.coachingService.Snapshot(), viewerID, withID))
		return
	}
	c.JSON(http.StatusOK, h.coachingService.Conversation(viewerID))
}

// SendMessage godoc
// @Summary Send a chat message
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body SendMessageRequest true "Message"
// @Success 201 {object} domain.ChatMessage
// @Failure 400 {object} gin.H "Empty text or only one participant given"
// @Failure 404 {object} gin.H "Unknown participant"
// @Router /messages [post]
func (h *CoachingHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	var (
		snap domain.AppState
		err  error
	)
	switch {
	case req.SenderID == "" && req.ReceiverID == "":
		snap, err = h.coachingService.SendFromCurrentUser(req.Text)
	case req.SenderID == "" || req.ReceiverID == "":
		abortWithError(c, http.StatusBadRequest, "senderId and receiverId must be given together.")
		return
	default:
		snap, err = h.coachingService.SendMessage(req.SenderID, req.ReceiverID, req.Text)
	}
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap.Messages[len(snap.Messages)-1])
}
