package api

import (
	"log"
	"net/http"

	"laplante/coach-app/internal/domain"

	"github.com/gin-gonic/gin"
)

// --- DTOs for Branding ---
type UpdateBusinessRequest struct {
	Name    *string `json:"name"`
	LogoURL *string `json:"logoUrl"` // Empty string removes the logo
}

// UpdateBusinessConfig godoc
// @Summary Update the business name and/or logo
// @Description Omitted fields are left unchanged. An invalid logo rejects the whole update.
// @Tags Business
// @Accept json
// @Produce json
// @Param update body UpdateBusinessRequest true "Fields to change"
// @Success 200 {object} domain.BusinessConfig
// @Failure 400 {object} gin.H "Invalid logo"
// @Failure 413 {object} gin.H "Logo too large"
// @Router /business [patch]
func (h *CoachingHandler) UpdateBusinessConfig(c *gin.Context) {
	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	snap, err := h.coachingService.UpdateBusinessConfig(domain.BusinessConfigUpdate{Name: req.Name, LogoURL: req.LogoURL})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Config)
}

// UploadLogo godoc
// @Summary Upload a new logo image
// @Tags Business
// @Accept multipart/form-data
// @Produce json
// @Param logo formData file true "Image file, at most 2 MiB"
// @Success 200 {object} domain.BusinessConfig
// @Failure 400 {object} gin.H "Missing file or not an image"
// @Failure 413 {object} gin.H "Image too large"
// @Router /business/logo [post]
func (h *CoachingHandler) UploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Missing 'logo' file: "+err.Error())
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("ERROR: Failed to open uploaded logo %q: %v", fileHeader.Filename, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to read uploaded file.")
		return
	}
	defer file.Close()

	snap, err := h.coachingService.UploadLogo(file)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Config)
}

// ClearLogo godoc
// @Summary Remove the logo
// @Tags Business
// @Produce json
// @Success 200 {object} domain.BusinessConfig
// @Router /business/logo [delete]
func (h *CoachingHandler) ClearLogo(c *gin.Context) {
	snap, err := h.coachingService.SetLogo("")
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap.Config)
}
