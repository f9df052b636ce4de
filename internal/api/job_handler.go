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

// JobHandler handles the open job board.
type JobHandler struct {
	jobService        core.JobService
	completionService core.CompletionService
	logger            *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(js core.JobService, cs core.CompletionService, logger *zap.Logger) *JobHandler {
	return &JobHandler{jobService: js, completionService: cs, logger: logger}
}

// Post handles POST /jobs
func (h *JobHandler) Post(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	job, err := h.jobService.Post(c.Request.Context(), session, req)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Find handles GET /jobs?pincode=&category= (the worker-facing board).
func (h *JobHandler) Find(c *gin.Context) {
	jobs, err := h.jobService.Find(c.Request.Context(), c.Query("pincode"), c.Query("category"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ListMine handles GET /jobs/mine (the citizen's posted jobs).
func (h *JobHandler) ListMine(c *gin.Context) {
	session := middleware.GetSession(c)

	jobs, err := h.jobService.ListForOwner(c.Request.Context(), session.Identity.UID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	if jobs == nil {
		jobs = []*models.Job{}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// Get handles GET /jobs/:jobId (owner's management view).
func (h *JobHandler) Get(c *gin.Context) {
	session := middleware.GetSession(c)

	job, err := h.jobService.GetForOwner(c.Request.Context(), session.Identity.UID, c.Param("jobId"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ToggleStatus handles PUT /jobs/:jobId/status, flipping open and closed.
func (h *JobHandler) ToggleStatus(c *gin.Context) {
	session := middleware.GetSession(c)

	status, err := h.jobService.ToggleStatus(c.Request.Context(), session.Identity.UID, c.Param("jobId"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Delete handles DELETE /jobs/:jobId
func (h *JobHandler) Delete(c *gin.Context) {
	session := middleware.GetSession(c)

	if err := h.jobService.Delete(c.Request.Context(), session.Identity.UID, c.Param("jobId")); err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}

// Complete handles POST /jobs/:jobId/complete, closing the job and
// recording the review in one call. A 202 with an intent ID means the job
// closed but the review still needs a retry.
func (h *JobHandler) Complete(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	err := h.completionService.CompleteJob(c.Request.Context(), session, c.Param("jobId"), req.WorkerID, req.Review)
	if err != nil {
		var pending *core.ReviewPendingError
		if errors.As(err, &pending) {
			c.JSON(http.StatusAccepted, ReviewPendingResponse{
				Error:    "job completed but review was not saved",
				IntentID: pending.IntentID,
			})
			return
		}
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job completed"})
}
