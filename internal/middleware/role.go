package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarthub/internal/pkg/response"
	"smarthub/internal/session"
)

// RequireSession rejects anonymous clients.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in to continue")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole ensures the signed-in client has one of roles.
func RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in to continue")
			c.Abort()
			return
		}

		for _, r := range roles {
			if sess.Role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(session.RoleAdmin)
}
