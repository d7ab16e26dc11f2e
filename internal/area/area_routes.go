package area

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	byCompany := r.Group("/companies/:id/areas")
	{
		byCompany.GET("", middleware.RateLimitByUser(2, 10), middleware.RBACAuthorize(rbacService, "area", "read"), h.ListByCompany)
		byCompany.POST("", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "area", "create"), h.Create)
	}

	areas := r.Group("/areas")
	{
		areas.PUT("/:id", middleware.RateLimitByUser(0.5, 2), middleware.RBACAuthorize(rbacService, "area", "update"), h.Update)
		areas.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), middleware.RBACAuthorize(rbacService, "area", "delete"), h.Deactivate)
	}
}
