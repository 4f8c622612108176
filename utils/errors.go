package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError represents a custom application error
type AppError struct {
	Code         int      `json:"code"`
	Message      string   `json:"message"`
	ValidOptions []string `json:"valid_options,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
	}
}

// NewUnknownOptionError reports a value outside of a fixed set of options
func NewUnknownOptionError(code int, kind, value string, options []string) *AppError {
	return &AppError{
		Code:         code,
		Message:      fmt.Sprintf("Unknown %s: %s", kind, value),
		ValidOptions: options,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		body := gin.H{"error": appErr.Message}
		if len(appErr.ValidOptions) > 0 {
			body["valid_options"] = appErr.ValidOptions
		}
		c.JSON(appErr.Code, body)
		return
	}

	// Default to internal server error
	c.JSON(http.StatusInternalServerError, gin.H{"error": ErrInternal})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
