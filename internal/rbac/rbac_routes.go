package rbac

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the auth middlewares.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service) {
	group := r.Group("/rbac")
	{
		group.GET("/check", handler.Check)
		group.GET("/policies", middleware.RBACAuthorize(service, "rbac", "read"), handler.ListPolicies)
		group.POST("/policies", middleware.RBACAuthorize(service, "rbac", "manage"), handler.Grant)
		group.DELETE("/policies", middleware.RBACAuthorize(service, "rbac", "manage"), handler.Revoke)
		group.POST("/reload", middleware.RBACAuthorize(service, "rbac", "manage"), handler.Reload)
	}
}
