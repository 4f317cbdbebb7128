package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-catalog-api/internal/core/auth"
	resp "go-catalog-api/internal/transport/http/response"
)

// AuthJWT requires a bearer access token and stores the user id under
// "userId". unauthStatus is the status for missing/invalid credentials:
// endpoints inherit either 401 or 403 from their declared authentication
// class, so the status is per-group rather than global.
func AuthJWT(j *auth.JWTer, unauthStatus int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(unauthStatus, resp.Error(unauthStatus, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "), auth.TypeAccess)
		if err != nil {
			c.AbortWithStatusJSON(unauthStatus, resp.Error(unauthStatus, "invalid token"))
			return
		}
		c.Set("userId", claims.UID)
		c.Next()
	}
}
