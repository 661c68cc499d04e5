package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/pkg/session"
)

// Context keys for the authenticated identity.
const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
)

// SessionMiddleware attaches the identity from the session cookie when one is
// present and valid. It never rejects; absent or invalid cookies simply leave
// the request anonymous.
func SessionMiddleware(sessions *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err == nil && token != "" {
			if claims, err := sessions.Validate(token); err == nil {
				c.Set(ContextUserIDKey, claims.UserID)
				c.Set(ContextEmailKey, claims.Email)
			}
		}
		c.Next()
	}
}

// RequireSession rejects requests that carry no valid session. Applied to the
// action endpoint only when AUTH_REQUIRED is set; the session actions
// themselves stay reachable so login can happen at all.
func RequireSession(exemptActions ...string) gin.HandlerFunc {
	exempt := make(map[string]bool, len(exemptActions))
	for _, action := range exemptActions {
		exempt[action] = true
	}

	return func(c *gin.Context) {
		if exempt[c.Query("action")] {
			c.Next()
			return
		}

		if _, exists := c.Get(ContextUserIDKey); !exists {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
