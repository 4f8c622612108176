package handlers

import (
	"github.com/fadhlanhapp/random-inator/utils"
	"github.com/gin-gonic/gin"
)

// RequestID tags every request with an X-Request-ID, reusing the caller's when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(utils.RequestIDHeader)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}
		c.Set(utils.RequestIDKey, requestID)
		c.Header(utils.RequestIDHeader, requestID)
		c.Next()
	}
}
