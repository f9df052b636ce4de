package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/middleware"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// ApplicationHandler handles worker applications to board jobs.
type ApplicationHandler struct {
	applicationService core.ApplicationService
	reviewService      core.ReviewService
	logger             *zap.Logger
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(as core.ApplicationService, rs core.ReviewService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{applicationService: as, reviewService: rs, logger: logger}
}

// applicationView decorates an application with whether its job already
// carries a review, which is how the client tells accepted-and-reviewed
// (completed) work apart from accepted-but-active work.
type applicationView struct {
	*models.Application
	HasReview bool `json:"hasReview"`
}

// Apply handles POST /jobs/:jobId/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	session := middleware.GetSession(c)

	app, err := h.applicationService.Apply(c.Request.Context(), session, c.Param("jobId"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListForJob handles GET /jobs/:jobId/applications (job owner only).
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	session := middleware.GetSession(c)

	apps, err := h.applicationService.ListForJob(c.Request.Context(), session.Identity.UID, c.Param("jobId"))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListMine handles GET /applications/mine (the worker's own applications).
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	session := middleware.GetSession(c)

	apps, err := h.applicationService.ListForWorker(c.Request.Context(), session.Identity.UID)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}

	views := make([]applicationView, 0, len(apps))
	for _, app := range apps {
		view := applicationView{Application: app}
		if app.Status == models.ApplicationAccepted {
			has, err := h.reviewService.HasReview(c.Request.Context(), app.JobID, app.WorkerID)
			if err != nil {
				// The listing still renders; the job just shows as active.
				h.logger.Warn("review lookup failed", zap.String("jobID", app.JobID), zap.Error(err))
			} else {
				view.HasReview = has
			}
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"applications": views})
}

// SetStatus handles PUT /applications/:appId/status (job owner only).
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	session := middleware.GetSession(c)

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	err := h.applicationService.SetStatus(c.Request.Context(), session.Identity.UID, c.Param("appId"), models.ApplicationStatus(req.Status))
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
