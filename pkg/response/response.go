package response

import (
	"github.com/gin-gonic/gin"
)

// The API exposes flat JSON bodies: success payloads are written as-is,
// acknowledgments as {"message": ...}, and every failure as
// {"error": ...} with an optional {"details": {field: message}} map.
// Status codes follow the usual taxonomy (400 validation, 401 bad
// credentials, 404 missing, 409 duplicate, 500 internal).

func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

func Error(c *gin.Context, status int, msg string, details any) {
	c.JSON(status, errorBody(msg, details))
}

// AbortError writes an error body and stops the handler chain; used by
// middleware.
func AbortError(c *gin.Context, status int, msg string, details any) {
	c.AbortWithStatusJSON(status, errorBody(msg, details))
}

func errorBody(msg string, details any) gin.H {
	body := gin.H{"error": msg}
	if details != nil {
		body["details"] = details
	}
	return body
}
