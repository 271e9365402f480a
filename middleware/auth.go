package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"immat-api/services"
)

const ClaimsKey = "claims"

// TokenParser validates a bearer token.
type TokenParser interface {
	ParseToken(token string) (*services.Claims, error)
}

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the claims under ClaimsKey.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "Authorization header required",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		claims, err := parser.ParseToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "Invalid or expired token",
				Code:  http.StatusUnauthorized,
			})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
