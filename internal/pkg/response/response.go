package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

// Envelope is the uniform JSON shape for every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK sends a success envelope with the given status code.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error envelope.
// AppError values carry their own HTTP status; anything else becomes a 500
// with a generic message so internal details never reach the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, Envelope{
			Success: false,
			Message: appErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "internal server error",
	})
}
