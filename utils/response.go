package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error response. code is a stable machine-readable
// error kind the clients switch on; message is meant for display.
func JSONError(c *gin.Context, status int, err error, code, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"code":    code,
		"message": message,
		"error":   err.Error(),
	})
}

// AbortJSONError writes an error response and stops the handler chain
func AbortJSONError(c *gin.Context, status int, err error, code, message string) {
	JSONError(c, status, err, code, message)
	c.Abort()
}
