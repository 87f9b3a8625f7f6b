package middleware

import (
	"net/http"
	"strings"

	"github.com/gestor-dev/gestor/internal/auth"
	"github.com/gestor-dev/gestor/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthRequired guards every non-auth route. A missing token is 403, a token
// that fails signature or expiry checks is 401. On success the verified
// username is attached to the request context for downstream handlers.
func AuthRequired(tokens *auth.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No token provided"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		username, err := tokens.Verify(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, username)
		ctx.Next()
	}
}

// CurrentUsername returns the identity AuthRequired stored on the context.
func CurrentUsername(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(types.ContextUserKey)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	return username, ok && username != ""
}
