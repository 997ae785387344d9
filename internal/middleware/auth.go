package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/dentallab-api/internal/auth"
)

const claimsKey = "claims"

// Authenticate verifies the bearer token and stores the claims in the
// request context. A missing or malformed header is 401; a token that fails
// signature or expiry checks is 403.
func Authenticate(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not provided or in an invalid format"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		claims, err := svc.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Require gates a route on the caller's capability level. It must run after
// Authenticate; a request with no verified claims never reaches the
// permission check.
func Require(level auth.Level) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token not provided or in an invalid format"})
			return
		}

		if !auth.LevelOf(claims.Permissions).Allows(level) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized access"})
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the verified claims set by Authenticate.
func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
