package middleware

import (
	"net/http"
	"strings"

	"nailbar/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the back-office routes. It requires a valid
// bearer token carrying the admin role and exposes the claims on the
// request context.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if claims.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("adminID", claims.Subject)
		c.Set("adminEmail", claims.Email)
		c.Set("isAdmin", true)
		c.Next()
	}
}
