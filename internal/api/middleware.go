package api

import (
	"errors"
	"log"
	"net/http"

	"laplante/coach-app/internal/service"
	"laplante/coach-app/internal/state"
	"laplante/coach-app/internal/upload"

	"github.com/gin-gonic/gin"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// statusForError maps service and state errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, state.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, state.ErrLogoTooLarge), errors.Is(err, upload.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, state.ErrInvalidInput),
		errors.Is(err, upload.ErrEmpty),
		errors.Is(err, upload.ErrNotImage):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrNothingToUndo), errors.Is(err, service.ErrNotLoggedIn):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotPermitted):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// abortWithServiceError aborts with the status for err. Unexpected errors are
// logged and hidden from the client.
func abortWithServiceError(c *gin.Context, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, code, "Internal server error.")
		return
	}
	abortWithError(c, code, err.Error())
}
