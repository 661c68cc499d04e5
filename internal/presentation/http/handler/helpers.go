package handler

import (
	"github.com/gin-gonic/gin"
)

// Context keys set by the session middleware.
const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "email"
)

// GetUserID returns the authenticated user id from the gin context, or nil
// when the request carries no valid session.
func GetUserID(c *gin.Context) *int64 {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return nil
	}
	userID, ok := value.(int64)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail returns the authenticated email from the gin context.
func GetUserEmail(c *gin.Context) string {
	value, exists := c.Get(ContextEmailKey)
	if !exists {
		return ""
	}
	email, _ := value.(string)
	return email
}
