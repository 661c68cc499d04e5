package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/janipakwan/pakwan-api/pkg/apperror"
)

// JSON sends data as-is with a 200 status. List endpoints return bare arrays
// and detail endpoints return bare objects, with no envelope.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// OK sends a success envelope with optional extra fields merged in.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail sends an error response. Every failure surfaces as a 400 with a single
// error message field.
func Fail(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": appErr.Message})
}

// FailMessage sends a 400 error response with the given message.
func FailMessage(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
