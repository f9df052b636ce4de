package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/geocode"
	"github.com/saathiconnect/saathi-backend/internal/middleware"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// Services bundles everything SetupRoutes wires into handlers.
type Services struct {
	Auth       core.AuthService
	Profile    core.ProfileService
	Search     core.SearchService
	Job        core.JobService
	Apps       core.ApplicationService
	Invite     core.InviteService
	Completion core.CompletionService
	Review     core.ReviewService
	Geocoder   *geocode.Client
}

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is applied to the router before this is called.
//
// Guard layering mirrors the client's navigation rules: session first,
// then onboarding, then role. A route never sees a caller the guard
// before it would have redirected.
func SetupRoutes(router *gin.Engine, guards *middleware.Guards, svcs Services, logger *zap.Logger) {
	authHandler := NewAuthHandler(svcs.Auth, logger)
	profileHandler := NewProfileHandler(svcs.Profile, logger)
	searchHandler := NewSearchHandler(svcs.Search, svcs.Review, svcs.Geocoder, logger)
	jobHandler := NewJobHandler(svcs.Job, svcs.Completion, logger)
	appHandler := NewApplicationHandler(svcs.Apps, svcs.Review, logger)
	inviteHandler := NewInviteHandler(svcs.Invite, svcs.Completion, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")

	// Public: credentials in, tokens out.
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/logout", guards.RequireSession(), authHandler.Logout)
		authGroup.GET("/session", guards.RequireSession(), authHandler.Session)
	}

	// Authenticated but not yet onboarded: the only thing such a caller can
	// do is finish onboarding.
	authed := apiV1.Group("", guards.RequireSession())
	authed.POST("/profile/onboarding", profileHandler.CompleteOnboarding)

	// Authenticated with a complete profile.
	profiled := authed.Group("", guards.RequireProfile())
	{
		profiled.PATCH("/profile", profileHandler.Update)
		profiled.POST("/profile/photo", profileHandler.UploadPhoto)

		profiled.GET("/search/categories", searchHandler.Categories)
		profiled.GET("/search/locations", searchHandler.Geocode)
		profiled.GET("/workers/:workerId/reviews", searchHandler.WorkerReviews)

		profiled.GET("/invites/completed", inviteHandler.ListCompleted)
		profiled.GET("/invites/scheduled", inviteHandler.ListScheduled)
	}

	// Citizen-only: hiring side.
	citizen := profiled.Group("", guards.RequireRole(models.RoleCitizen))
	{
		citizen.GET("/search/workers", searchHandler.SearchWorkers)

		citizen.POST("/jobs", jobHandler.Post)
		citizen.GET("/jobs/mine", jobHandler.ListMine)
		citizen.GET("/jobs/:jobId", jobHandler.Get)
		citizen.PUT("/jobs/:jobId/status", jobHandler.ToggleStatus)
		citizen.DELETE("/jobs/:jobId", jobHandler.Delete)
		citizen.POST("/jobs/:jobId/complete", jobHandler.Complete)
		citizen.GET("/jobs/:jobId/applications", appHandler.ListForJob)
		citizen.PUT("/applications/:appId/status", appHandler.SetStatus)

		citizen.POST("/invites", inviteHandler.Create)
		citizen.GET("/invites/active", inviteHandler.ListActive)
		citizen.POST("/invites/:inviteId/complete", inviteHandler.Complete)

		citizen.GET("/reviews/pending", inviteHandler.ListPendingReviews)
		citizen.POST("/reviews/retry/:intentId", inviteHandler.RetryReview)
	}

	// Worker-only: working side.
	worker := profiled.Group("", guards.RequireRole(models.RoleWorker))
	{
		worker.GET("/jobs", jobHandler.Find)
		worker.POST("/jobs/:jobId/applications", appHandler.Apply)
		worker.GET("/applications/mine", appHandler.ListMine)

		worker.GET("/invites/received", inviteHandler.ListReceived)
		worker.PUT("/invites/:inviteId/status", inviteHandler.Respond)

		worker.PUT("/profile/availability", profileHandler.SetAvailability)
	}
}
