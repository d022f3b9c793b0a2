package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody represents an error response body
type ErrorBody struct {
	Error string `json:"error"`
}

// Error builds an error response body
func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// ErrorJSON sends an error JSON response
func ErrorJSON(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Error(message))
}
