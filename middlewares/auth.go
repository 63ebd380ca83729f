// Validates the access token and injects the resolved user into the
// Gin context for downstream handlers.

package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Lewis3ai/INFOA1test/global"
	"github.com/Lewis3ai/INFOA1test/services"
	"github.com/Lewis3ai/INFOA1test/utils"
)

// Auth returns a Gin middleware guarding protected routes. The token is
// accepted from the auth cookie or from "Authorization: Bearer <token>";
// the server trusts either location. On success the *models.User is
// stored under global.CtxUserKey; every failure short-circuits with 401
// and the wrapped handler never runs.
//
// The identity is re-resolved against the users table on every request
// so a deleted account holding a still-valid token is rejected.
func Auth(tokens *utils.TokenManager, users services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c, cookieName)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		username, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		user, err := users.Resolve(username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
			return
		}

		c.Set(global.CtxUserKey, user)
		c.Next()
	}
}

// tokenFromRequest checks the cookie first, then the bearer header.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
