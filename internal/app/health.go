package app

import (
	"context"
	"net/http"
	"time"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func healthCheck(in *Infra) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "up", "redis": "disabled"}
		if err := in.SQLDB.PingContext(ctx); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "STORAGE_FAILURE", "Database unavailable", nil)
			return
		}
		if in.Redis != nil {
			status["redis"] = "up"
			if err := in.Redis.Ping(ctx).Err(); err != nil {
				status["redis"] = "down"
			}
		}
		response.Success(c, http.StatusOK, status, nil)
	}
}
