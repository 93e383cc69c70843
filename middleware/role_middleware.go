package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ProviderMiddleware ensures the caller is provider staff (or admin).
// Must run after AuthMiddleware.
func ProviderMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || (roleStr != "provider" && roleStr != "admin") {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Provider privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminMiddleware ensures the caller has the admin role.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClientScopeMiddleware guards the /c/:slug namespace. Client callers whose
// own namespace differs from the path are redirected to the same route
// under their own slug; they are never served another client's data.
// Providers and admins may browse any namespace. Must run after
// AuthMiddleware on routes that carry a :slug parameter.
func ClientScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if roleStr, ok := role.(string); ok && (roleStr == "provider" || roleStr == "admin") {
			c.Next()
			return
		}

		pathSlug := c.Param("slug")
		ownSlug, _ := c.Get("clientSlug")
		own, _ := ownSlug.(string)

		if own == "" {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "No client namespace for this account",
			})
			c.Abort()
			return
		}

		if own != pathSlug {
			location := strings.Replace(c.Request.URL.Path, "/c/"+pathSlug, "/c/"+own, 1)
			c.Redirect(http.StatusTemporaryRedirect, location)
			c.Abort()
			return
		}

		c.Next()
	}
}
