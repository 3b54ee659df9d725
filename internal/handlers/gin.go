package handlers

import (
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"eyewear-ai-proxy/internal/middleware"
	"eyewear-ai-proxy/pkg/lambda"
)

// GinHandler exposes the router to the gin dev server so both runtimes share one code path
func (r *Router) GinHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			writeGinResponse(c, DecodeErrorResponse(err))
			return
		}

		requestID := c.GetString(middleware.RequestIDKey)
		if requestID == "" {
			requestID = c.GetHeader(middleware.RequestIDHeader)
		}

		req := &lambda.Request{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Headers:   flattenHeaders(c),
			Body:      body,
			RequestID: requestID,
		}

		writeGinResponse(c, r.Route(c.Request.Context(), req))
	}
}

func flattenHeaders(c *gin.Context) map[string]string {
	headers := make(map[string]string, len(c.Request.Header))
	for key, values := range c.Request.Header {
		headers[key] = strings.Join(values, ",")
	}
	return headers
}

func writeGinResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}

	if len(resp.Body) == 0 {
		c.AbortWithStatus(resp.StatusCode)
		return
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}
