package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/middleware"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// Profile photos larger than this are rejected before hitting storage.
const maxPhotoSize = 5 << 20

// ProfileHandler handles onboarding and profile edits.
type ProfileHandler struct {
	profileService core.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps core.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{profileService: ps, logger: logger}
}

// CompleteOnboarding handles POST /profile/onboarding
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	profile, err := h.profileService.CompleteOnboarding(c.Request.Context(), session.Identity, req.Role, req.Pincode)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Update handles PATCH /profile
func (h *ProfileHandler) Update(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.profileService.Update(c.Request.Context(), session, req); err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

// UploadPhoto handles POST /profile/photo with a multipart "photo" field.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	session := middleware.GetSession(c)

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "photo file is required", Details: err.Error()})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "photo exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read photo", Details: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read photo", Details: err.Error()})
		return
	}
	if len(data) > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "photo exceeds the 5MB limit"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := h.profileService.UploadPhoto(c.Request.Context(), session.Identity.UID, data, contentType)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoURL": url})
}

// SetAvailability handles PUT /profile/availability
func (h *ProfileHandler) SetAvailability(c *gin.Context) {
	session := middleware.GetSession(c)

	var req struct {
		IsAvailable *bool `json:"isAvailable" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.profileService.SetAvailability(c.Request.Context(), session.Identity.UID, *req.IsAvailable); err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAvailable": *req.IsAvailable})
}
