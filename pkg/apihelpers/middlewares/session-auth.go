package middlewares

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	jwthandling "github.com/AlbertoHugonin/privacydashboard/pkg/jwt-handling"
	"github.com/gin-gonic/gin"

	userDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/dashboard-user"
)

const (
	SessionCookieName = "dashboard_session"

	HeaderAuthorization = "Authorization"

	// context key the resolved principal is stored under
	PrincipalKey = "principal"
)

// Principal is the authenticated identity every handler works with. It is
// replaced wholesale on each request, never mutated.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Mail string `json:"mail,omitempty"`
}

// SessionAuthMiddleware resolves the principal from the session cookie, or
// from a Bearer token for non-browser clients. Requests without a valid
// session are rejected with 401 so clients degrade to their login prompt.
func SessionAuthMiddleware(dashboardUserDBService *userDB.DashboardUserDBService, tokenSignKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
			resolveSessionCookie(c, dashboardUserDBService, token)
			return
		}

		if token, err := extractBearerToken(c); err == nil {
			resolveBearerToken(c, tokenSignKey, token)
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		c.Abort()
	}
}

func resolveSessionCookie(c *gin.Context, dashboardUserDBService *userDB.DashboardUserDBService, token string) {
	session, err := dashboardUserDBService.GetSessionByToken(token)
	if err != nil {
		slog.Debug("session cookie did not resolve", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		c.Abort()
		return
	}

	user, err := dashboardUserDBService.GetUserByID(session.UserID)
	if err != nil {
		slog.Warn("session points to missing user", slog.String("userID", session.UserID))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		c.Abort()
		return
	}

	c.Set(PrincipalKey, Principal{
		ID:   user.ID.Hex(),
		Name: user.Name,
		Role: user.Role,
		Mail: user.Mail,
	})
}

func resolveBearerToken(c *gin.Context, tokenSignKey string, token string) {
	claims, valid, err := jwthandling.ValidateDashboardUserToken(token, tokenSignKey)
	if err != nil || !valid {
		slog.Warn("token validation failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "error during token validation"})
		c.Abort()
		return
	}

	c.Set(PrincipalKey, Principal{
		ID:   claims.ID,
		Name: claims.Name,
		Role: claims.Role,
	})
}

func extractBearerToken(c *gin.Context) (string, error) {
	tokens, ok := c.Request.Header[HeaderAuthorization]
	if !ok || len(tokens) < 1 {
		return "", errors.New("no Authorization header found")
	}
	token := strings.TrimPrefix(tokens[0], "Bearer ")
	if len(token) == 0 {
		return "", errors.New("no token found in Authorization header")
	}
	return token, nil
}

// GetPrincipal returns the principal resolved by SessionAuthMiddleware.
func GetPrincipal(c *gin.Context) Principal {
	return c.MustGet(PrincipalKey).(Principal)
}
