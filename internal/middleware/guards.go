package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/saathiconnect/saathi-backend/internal/core"
	"github.com/saathiconnect/saathi-backend/internal/models"
)

// SessionKey is the gin context key under which RequireSession stores the
// resolved *models.Session.
const SessionKey = "session"

// Guards holds the three route-guard layers. They compose in order:
// RequireSession, then RequireProfile, then RequireRole, each assuming
// the previous one ran.
type Guards struct {
	verifier core.TokenVerifier
	sessions core.SessionService
}

// NewGuards creates the guard set from a token verifier and session resolver.
func NewGuards(verifier core.TokenVerifier, sessions core.SessionService) *Guards {
	return &Guards{verifier: verifier, sessions: sessions}
}

// RequireSession verifies the bearer token and resolves the caller's
// session. Anonymous callers get 401 with a login redirect hint; a bad or
// expired token and a missing token are answered identically.
func (g *Guards) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header format must be 'Bearer {token}'", "redirect": "/login"})
			return
		}

		uid, err := g.verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired authentication token", "redirect": "/login"})
			return
		}

		session := g.sessions.Resolve(c.Request.Context(), uid)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// RequireProfile rejects authenticated callers who have not finished
// onboarding, pointing them at the onboarding flow.
func (g *Guards) RequireProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
			return
		}
		if session.Profile == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "profile setup required", "redirect": "/onboarding"})
			return
		}
		c.Next()
	}
}

// RequireRole rejects callers whose profile role is not in the allowed set,
// pointing them back to their own home view.
func (g *Guards) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || session.Profile == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "profile setup required", "redirect": "/onboarding"})
			return
		}
		for _, role := range roles {
			if session.Profile.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not available for your role", "redirect": "/"})
	}
}

// GetSession returns the session stored by RequireSession, or nil.
func GetSession(c *gin.Context) *models.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	session, ok := v.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
