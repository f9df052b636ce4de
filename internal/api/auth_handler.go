package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/middleware"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// AuthHandler handles login, signup, logout and session resolution.
type AuthHandler struct {
	authService core.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: as, logger: logger}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	tokens, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	tokens, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, tokens)
}

// Logout handles POST /auth/logout. Revoking refresh tokens invalidates the
// caller's sessions everywhere; the ID token itself expires on its own.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), session.Identity.UID); err != nil {
		mapErrorToStatus(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Session handles GET /auth/session. It returns the resolved session so
// the client can decide between login, onboarding and home views.
func (h *AuthHandler) Session(c *gin.Context) {
	session := middleware.GetSession(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	c.JSON(http.StatusOK, session)
}
