package document

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.GET("/employees/:id/documents",
		middleware.RateLimitByUser(2, 10),
		middleware.RBACAuthorize(rbacService, "document", "read"),
		handler.GetByEmployee,
	)

	r.POST("/employees/:id/documents/recompute",
		middleware.RateLimitByUser(0.5, 2),
		middleware.RBACAuthorize(rbacService, "document", "update"),
		handler.Recompute,
	)

	documents := r.Group("/documents")
	{
		documents.GET("/expiring",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "document", "read"),
			handler.ListExpiring,
		)

		documents.POST("/recompute",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "document", "manage"),
			handler.RecomputeAll,
		)
	}
}
