package routes

import (
	"net/http"

	"trivia/handlers"
	"trivia/middleware"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes registers the API on router. authService is nil when admin
// auth is disabled, in which case DELETE is open and /auth/token is absent.
func SetupRoutes(
	router *gin.Engine,
	categoryHandler *handlers.CategoryHandler,
	questionHandler *handlers.QuestionHandler,
	quizHandler *handlers.QuizHandler,
	authHandler *handlers.AuthHandler,
	wsHandler *handlers.WSHandler,
	authService *services.AuthService,
	gatherer prometheus.Gatherer,
) {
	router.HandleMethodNotAllowed = true
	router.NoRoute(handlers.NotFound)
	router.NoMethod(handlers.MethodNotAllowed)

	deleteChain := []gin.HandlerFunc{questionHandler.DeleteQuestion}
	if authService != nil {
		deleteChain = append([]gin.HandlerFunc{middleware.AuthMiddleware(authService)}, deleteChain...)

		router.POST("/auth/token", authHandler.Token)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:id/questions", categoryHandler.GetCategoryQuestions)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", questionHandler.GetQuestions)
		questions.POST("", questionHandler.PostQuestions)
		questions.DELETE("/:id", deleteChain...)
	}

	router.POST("/quizzes", quizHandler.NextQuestion)

	if wsHandler != nil {
		router.GET("/ws/questions", wsHandler.QuestionFeed)
	}

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
