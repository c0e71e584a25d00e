package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"car_rental_backend/internal/feature/auth/domain/entity"
	"car_rental_backend/internal/feature/auth/usecase"
)

// CookieName is the name of the session cookie carried by the client.
const CookieName = "session_token"

// Gin context keys set by the middleware for downstream handlers.
const (
	ContextUserID  = "userID"
	ContextSession = "session"
)

// SessionRequired returns a gin middleware that restricts access to requests
// carrying a valid session cookie. The authenticated user ID and the session
// snapshot are stored in the request context.
func SessionRequired(sessions usecase.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sess, err := sessions.FindByToken(c.Request.Context(), token)
		if err != nil || !sess.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextSession, sess)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user ID set by SessionRequired.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// FromContext returns the session snapshot set by SessionRequired.
func FromContext(c *gin.Context) (*entity.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*entity.Session)
	return sess, ok
}
