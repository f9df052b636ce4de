package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
)

// ErrorResponse is the standardized error payload for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ReviewPendingResponse is returned when a completion's status write landed
// but the review write did not. The client retries against the intent.
type ReviewPendingResponse struct {
	Error    string `json:"error"`
	IntentID string `json:"intentId"`
}

// mapErrorToStatus translates core service errors to HTTP responses.
// Handlers with flow-specific errors intercept those before calling this.
func mapErrorToStatus(c *gin.Context, logger *zap.Logger, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errResponse = ErrorResponse{Error: core.ErrInvalidCredentials.Error()}
	case errors.Is(err, core.ErrForbidden):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbidden.Error()}
	case errors.Is(err, core.ErrJobNotFound),
		errors.Is(err, core.ErrInviteNotFound),
		errors.Is(err, core.ErrApplicationNotFound),
		errors.Is(err, core.ErrWorkerNotFound),
		errors.Is(err, core.ErrIntentNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrProfileExists),
		errors.Is(err, core.ErrAlreadyApplied):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrInvalidTransition):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: err.Error()}
	case errors.Is(err, core.ErrInvalidRole),
		errors.Is(err, core.ErrInvalidPincode),
		errors.Is(err, core.ErrNotWorker):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: err.Error()}
	default:
		logger.Error("unhandled service error", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}
