package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON body shared by the form endpoints. Empty fields are
// omitted so each endpoint emits exactly the keys its contract names.
type Response struct {
	Success bool        `json:"success,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// Success sends {success: true[, message]}
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success: true,
		Message: message,
	})
}

// Message sends a bare {message} body, used when nothing changed.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

// Error sends {error[, details]}
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Response{
		Error:   message,
		Details: details,
	})
}
