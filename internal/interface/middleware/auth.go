package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cosmelog/cosme-review-api/pkg/helpers"
	"github.com/cosmelog/cosme-review-api/pkg/response"
)

// BearerAuth validates the Authorization header and sets the caller's
// userID (int64) in the Gin context on success.
func BearerAuth(jwt *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortUnauthorized(c, "Missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.AbortUnauthorized(c, "Malformed authorization header")
			return
		}
		claims, err := jwt.Parse(parts[1])
		if err != nil {
			response.AbortUnauthorized(c, "Invalid or expired token")
			return
		}
		c.Set("userID", claims.UserID)
		c.Next()
	}
}
