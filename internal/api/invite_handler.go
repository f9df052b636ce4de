package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/middleware"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// InviteHandler handles direct citizen-to-worker offers and their
// completion flow.
type InviteHandler struct {
	inviteService     core.InviteService
	completionService core.CompletionService
	logger            *zap.Logger
}

// NewInviteHandler creates a new InviteHandler.
func NewInviteHandler(is core.InviteService, cs core.CompletionService, logger *zap.Logger) *InviteHandler {
	return &InviteHandler{inviteService: is, completionService: cs, logger: logger}
}

// Create handles POST /invites (citizen sends an offer).
func (h *InviteHandler) Create(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	invite, err := h.inviteService.Create(c.Request.Context(), session, req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}

// ListReceived handles GET /invites/received (the worker's inbox).
func (h *InviteHandler) ListReceived(c *gin.Context) {
	session := middleware.GetSession(c)

	invites, err := h.inviteService.ListForWorker(c.Request.Context(), session.Identity.UID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": emptyIfNil(invites)})
}

// ListActive handles GET /invites/active (the citizen's sent offers).
func (h *InviteHandler) ListActive(c *gin.Context) {
	session := middleware.GetSession(c)

	invites, err := h.inviteService.ListActiveForCitizen(c.Request.Context(), session.Identity.UID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": emptyIfNil(invites)})
}

// ListCompleted handles GET /invites/completed, role-aware.
func (h *InviteHandler) ListCompleted(c *gin.Context) {
	session := middleware.GetSession(c)

	invites, err := h.inviteService.ListCompleted(c.Request.Context(), session)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": emptyIfNil(invites)})
}

// ListScheduled handles GET /invites/scheduled, role-aware.
func (h *InviteHandler) ListScheduled(c *gin.Context) {
	session := middleware.GetSession(c)

	invites, err := h.inviteService.ListScheduled(c.Request.Context(), session)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": emptyIfNil(invites)})
}

// Respond handles PUT /invites/:inviteId/status (worker accepts or rejects).
func (h *InviteHandler) Respond(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	err := h.inviteService.Respond(c.Request.Context(), session.Identity.UID, c.Param("inviteId"), models.InviteStatus(req.Status))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

// Complete handles POST /invites/:inviteId/complete. A 202 with an intent
// ID means the invite completed but the review still needs a retry.
func (h *InviteHandler) Complete(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	err := h.completionService.CompleteInvite(c.Request.Context(), session, c.Param("inviteId"), req)
	if err != nil {
		var pending *core.ReviewPendingError
		if errors.As(err, &pending) {
			c.JSON(http.StatusAccepted, ReviewPendingResponse{
				Error:    "work completed but review was not saved",
				IntentID: pending.IntentID,
			})
			return
		}
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "work completed"})
}

// RetryReview handles POST /reviews/retry/:intentId for completions whose
// review write failed earlier.
func (h *InviteHandler) RetryReview(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	err := h.completionService.RetryReview(c.Request.Context(), session.Identity.UID, c.Param("intentId"), req)
	if err != nil {
		var pending *core.ReviewPendingError
		if errors.As(err, &pending) {
			c.JSON(http.StatusAccepted, ReviewPendingResponse{
				Error:    "review still not saved, retry again",
				IntentID: pending.IntentID,
			})
			return
		}
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review saved"})
}

// ListPendingReviews handles GET /reviews/pending.
func (h *InviteHandler) ListPendingReviews(c *gin.Context) {
	session := middleware.GetSession(c)

	intents, err := h.completionService.ListPending(c.Request.Context(), session.Identity.UID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	if intents == nil {
		intents = []*models.CompletionIntent{}
	}
	c.JSON(http.StatusOK, gin.H{"pending": intents})
}

func emptyIfNil(invites []*models.Invite) []*models.Invite {
	if invites == nil {
		return []*models.Invite{}
	}
	return invites
}
