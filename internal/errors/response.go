package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error payload for non-HTML endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // machine-readable code (see codes.go)
	Message string `json:"message"` // human-readable description
}

// RespondWithError writes the standard error payload.
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Shorthand helpers for the common cases.

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func BadGateway(c *gin.Context, message string) {
	if message == "" {
		message = "Upstream data service is unavailable, try again later"
	}
	RespondWithError(c, http.StatusBadGateway, BackendUnavailable, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Something went wrong, try again later"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}
