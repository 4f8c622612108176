package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID generates an identifier for an incoming request
func GenerateRequestID() string {
	return uuid.NewString()
}
