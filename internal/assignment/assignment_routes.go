package assignment

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	assignments := r.Group("/assignments")
	{
		assignments.GET("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.List,
		)

		assignments.GET("/calendar",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.Calendar,
		)

		assignments.GET("/availability",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.CheckAvailability,
		)

		assignments.GET("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "assignment", "read"),
			handler.GetByID,
		)

		assignments.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assignment", "create"),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		assignments.PATCH("/:id/status",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assignment", "update"),
			handler.UpdateStatus,
		)

		assignments.POST("/:id/cancel",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "assignment", "cancel"),
			handler.Cancel,
		)
	}
}
