package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponse is the error body written by middleware that aborts a request
type ErrorResponse struct {
	Error string `json:"error"`
}

// RequestSizeLimit limits the size of request bodies.
// A non-positive maxSize disables the limit.
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxSize <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxSize {
			logrus.WithFields(logrus.Fields{
				"request_id":     c.GetString(RequestIDKey),
				"path":           c.Request.URL.Path,
				"content_length": c.Request.ContentLength,
				"max_size":       maxSize,
			}).Warn("Request body too large")

			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
				Error: fmt.Sprintf("Request body size (%d bytes) exceeds maximum allowed size (%d bytes)", c.Request.ContentLength, maxSize),
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
