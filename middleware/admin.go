package middleware

import (
	"net/http"

	"medibook/services/user"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates a route on the claimed identity holding the
// admin role. Must run after JWTAuthMiddleware.
func AdminAuthMiddleware(userService user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := ClaimedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing identity"})
			return
		}

		isAdmin, err := userService.IsAdmin(email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}

		c.Next()
	}
}
