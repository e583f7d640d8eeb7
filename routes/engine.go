package routes

import (
	"net/http"
	"time"

	"trivia/handlers"
	"trivia/metrics"
	"trivia/middleware"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewEngine returns a gin engine with the shared middleware stack.
func NewEngine(logger *zap.Logger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/metrics"},
		Context: func(c *gin.Context) []zap.Field {
			return []zap.Field{zap.String("request_id", c.GetString(middleware.RequestIDKey))}
		},
	}))
	router.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, _ any) {
		handlers.AbortWithError(c, http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(m))

	return router
}
