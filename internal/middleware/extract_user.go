package middleware

import (
	"net/http"

	"github.com/LiquidSebabas/InnOutPG/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func abort(c *gin.Context, status int, code, message string) {
	response.Error(c, status, code, message, nil)
	c.Abort()
}

// ExtractUserID requires the principal set by AuthMiddleware and publishes
// it as user_id_validated, the actor id handlers pass to services.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "User is not authenticated")
			return
		}

		c.Set("user_id_validated", userID)
		c.Next()
	}
}
