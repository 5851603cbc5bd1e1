package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequireAdmin validates the bearer token and rejects tokens on the
// revocation list. Failures are reported with a generic message; no detail
// on which check failed leaks to the caller.
func RequireAdmin(tokens *JWTService, revoked *RevocationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized: No token provided"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}

		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil || isRevoked {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
				c.Abort()
				return
			}
		}

		c.Set(CtxAdminID, claims.AdminID)
		c.Set(CtxTokenJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(CtxTokenExp, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// TokenJTI and TokenExpiry expose the verified token's id and expiry for
// the logout handler.
func TokenJTI(c *gin.Context) string {
	return c.GetString(CtxTokenJTI)
}

func TokenExpiry(c *gin.Context) time.Time {
	v, ok := c.Get(CtxTokenExp)
	if !ok {
		return time.Time{}
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}
	}
	return t
}

// extractToken pulls the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
