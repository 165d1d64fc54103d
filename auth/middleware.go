// Package auth gates the public API with a shared secret.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireflow/backend/logger"
	"github.com/hireflow/backend/models"
)

const (
	// APIKeyHeader carries the shared secret on public API requests
	APIKeyHeader = "x-api-key"
	// AuthenticatedKey is set in the gin context once the key matched
	AuthenticatedKey = "api_key_authenticated"
)

// APIKeyMiddleware rejects requests whose x-api-key header does not match
// secret. An empty secret rejects every request.
func APIKeyMiddleware(secret string) gin.HandlerFunc {
	log := logger.For("Auth")
	if secret == "" {
		log.Warn("API_SECRET is not set, public API requests will be rejected")
	}

	return func(c *gin.Context) {
		if !KeyMatches(secret, c.GetHeader(APIKeyHeader)) {
			log.WithField("path", c.FullPath()).Warn("rejected request with invalid API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Error: "Unauthorized",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		c.Set(AuthenticatedKey, true)
		c.Next()
	}
}

// KeyMatches compares a presented key against the secret in constant time
func KeyMatches(secret, presented string) bool {
	if secret == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(presented)) == 1
}

// IsAuthenticated reports whether the API key gate accepted this request
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(AuthenticatedKey)
}
