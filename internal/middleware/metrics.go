package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiowoji/blog-api/internal/constants"
	"github.com/kiowoji/blog-api/internal/database"
	"github.com/kiowoji/blog-api/internal/models"
)

// RequestMetrics tags each request with an ID and records one
// APIMetric row per handled request. The row is written off the
// request path so slow metric writes never delay the response.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)

		startTime := time.Now()

		c.Next()

		metric := models.APIMetric{
			RequestID:  requestID,
			Endpoint:   c.FullPath(),
			Method:     c.Request.Method,
			StatusCode: c.Writer.Status(),
			DurationMs: time.Since(startTime).Milliseconds(),
			Timestamp:  startTime,
		}

		go func() {
			database.GetDB().Create(&metric)
		}()
	}
}
