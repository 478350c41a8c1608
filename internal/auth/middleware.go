package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKeyAccountID = "account_id"

// AccountIDFromContext returns the principal set by RequireAuth.
// uuid.Nil if not set.
func AccountIDFromContext(c *gin.Context) uuid.UUID {
	v, ok := c.Get(contextKeyAccountID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// RequireAuth returns a middleware that validates the Authorization bearer
// token and binds the account ID in context. The credential store is not
// consulted; the claims are trusted for their validity window. Missing or
// invalid token responds 401.
func RequireAuth(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		claims, err := tokens.Validate(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		accountID, err := claims.AccountID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		c.Set(contextKeyAccountID, accountID)
		c.Next()
	}
}
