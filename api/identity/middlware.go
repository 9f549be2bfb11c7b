package identity

import (
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const (
	// ContextSessionClaims is the key used to store session claims in the Gin context.
	ContextSessionClaims = "sessionClaims"

	// tokenQueryParam carries the token for clients that cannot set headers (browser websockets).
	tokenQueryParam = "token"
)

// Authoriz rejects requests without a valid session token and stores the
// decoded claims in the Gin context.
func Authoriz(ts i.Tokenizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Validate the token using the tokenizer.
		claims, err := ts.Decode(token)
		if err != nil {
			c.Status(http.StatusUnauthorized)
			c.Abort()
			return
		}

		// Attach session claims to the request context for further use.
		c.Set(ContextSessionClaims, claims)
		c.Next()
	}
}

// extractToken reads a bearer token from the Authorization header, falling back to the query string.
func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		token := c.Query(tokenQueryParam)
		return token, token != ""
	}

	// Split the "Bearer" prefix from the token.
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
