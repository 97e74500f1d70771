package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
	"github.com/gin-gonic/gin"
)

// RequireRole blocks requests whose principal has none of the given roles.
// Must run after SessionAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if !utils.ContainsString(roles, principal.Role) {
			slog.Warn("role not allowed for endpoint",
				slog.String("userID", principal.ID),
				slog.String("role", principal.Role),
				slog.String("path", c.Request.URL.Path))
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}
