package shift

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	shifts := r.Group("/shifts")
	{
		shifts.GET("/available",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetAvailable,
		)

		shifts.GET("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "shift", "read"),
			handler.GetByID,
		)
	}
}
