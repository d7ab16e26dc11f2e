package report

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	reports := r.Group("/reports")
	reports.Use(middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		reports.GET("/dashboard", middleware.RateLimitByUser(2, 10), handler.Dashboard)
		reports.GET("/biweekly", middleware.RateLimitByUser(1, 5), handler.Biweekly)
		reports.GET("/biweekly.pdf", middleware.RateLimitByUser(0.2, 2), handler.BiweeklyPDF)
		reports.GET("/employees/:id/stats", middleware.RateLimitByUser(1, 5), handler.EmployeeStats)
		reports.GET("/companies/summary", middleware.RateLimitByUser(1, 5), handler.CompanySummary)
		reports.GET("/productivity", middleware.RateLimitByUser(1, 5), handler.Productivity)
		reports.GET("/employees-by-area", middleware.RateLimitByUser(1, 5), handler.EmployeesByArea)
	}
}
