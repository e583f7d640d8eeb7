package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"trivia/cache"
	"trivia/config"
	"trivia/handlers"
	"trivia/logger"
	"trivia/metrics"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize Redis
	redisClient := config.InitRedis(cfg)
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, category cache will fall through to the database", zap.Error(err))
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	hub := services.NewHub(log.Named("hub"))
	go hub.Run(ctx)

	// Initialize services
	categoryService := services.NewCategoryService(db, cache.NewCategoryCache(redisClient, cfg.CategoryCacheTTL), log)
	questionService := services.NewQuestionService(db, categoryService, hub, log)
	quizService := services.NewQuizService(db, categoryService, m, log)

	var authService *services.AuthService
	if cfg.AuthEnabled() {
		authService = services.NewAuthService(cfg.JWTSecret, cfg.JWTTTL, cfg.AdminUsername, cfg.AdminPassHash)
	} else {
		log.Warn("JWT_SECRET not set, question deletion is unauthenticated")
	}

	if cfg.SeedCategories {
		if err := categoryService.SeedDefaults(ctx); err != nil {
			log.Fatal("failed to seed categories", zap.Error(err))
		}
	}

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, log)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, log)
	quizHandler := handlers.NewQuizHandler(quizService, log)
	authHandler := handlers.NewAuthHandler(authService, log)
	wsHandler := handlers.NewWSHandler(hub, log)

	router := routes.NewEngine(log, m)
	routes.SetupRoutes(router, categoryHandler, questionHandler, quizHandler, authHandler, wsHandler, authService, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
