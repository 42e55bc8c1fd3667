package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/enviconnect/enviconnect/internal/handler/http/dto"
	"github.com/enviconnect/enviconnect/internal/usecase"
)

// AuthMiddleWare validates the bearer token issued at login and stores
// the caller's identity on the context.
func AuthMiddleWare(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Missing or invalid authorization header"})
			return
		}

		claims, err := jwtService.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// RequireSelf rejects requests whose authenticated user does not match
// the :id path parameter.
func RequireSelf() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID")
		if !exists || userID.(string) != c.Param("id") {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Cannot modify another user's profile"})
			return
		}
		c.Next()
	}
}
