package auth

import (
	"github.com/LiquidSebabas/InnOutPG/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public endpoints on public and the
// authenticated ones on protected.
func RegisterRoutes(public, protected *gin.RouterGroup, handler *Handler) {
	auth := public.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.Refresh)
		auth.POST("/logout", handler.Logout)
	}

	me := protected.Group("/auth")
	{
		me.GET("/me", middleware.RateLimitByUser(2, 5), handler.Me)
		me.POST("/change-password", middleware.RateLimitByUser(0.1, 2), handler.ChangePassword)
	}
}
