package middleware

import (
	"net/http"
	"strings"

	"trivia/handlers"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid admin bearer token.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			handlers.AbortWithError(c, http.StatusUnauthorized)
			return
		}

		subject, err := authService.ValidateToken(token)
		if err != nil {
			handlers.AbortWithError(c, http.StatusUnauthorized)
			return
		}

		c.Set("admin", subject)
		c.Next()
	}
}
