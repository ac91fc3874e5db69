package middleware

import (
	"AppNotas/pkg/context"
	"AppNotas/pkg/log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// GinZap 访问日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if uid, ok := c.Get(context.CtxUserID); ok {
			fields = append(fields, zap.Any("user_id", uid))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.L.Error("http request", fields...)
		case status >= 400:
			log.L.Warn("http request", fields...)
		default:
			log.L.Info("http request", fields...)
		}
	}
}
