package middleware

import (
	"github.com/LiquidSebabas/InnOutPG/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger stores a request-scoped logger in the request context,
// decorated with whatever of request id, user and role is known. Mount it
// after RequestID and the auth middlewares.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if contextutil.GetRequestID(ctx) == "" {
			if rid := c.GetString("request_id"); rid != "" {
				ctx = contextutil.WithRequestID(ctx, rid)
			}
		}

		reqLogger := logger.With(contextutil.ExtractMetadata(ctx).Fields()...)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
