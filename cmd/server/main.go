package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"estates/internal/cache"
	"estates/internal/config"
	"estates/internal/handler"
	"estates/internal/repository"
	"estates/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("estates backend starting",
		"version", Version, "build_time", BuildTime, "git_commit", GitCommit)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to PostgreSQL")

	// Optional trending cache
	trendingCache := cache.NewTrendingCache(
		cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TrendingTTL)
	if trendingCache != nil {
		defer trendingCache.Close()
		logger.Info("trending cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TrendingTTL)
	}

	// Initialize services
	propertyService := service.NewPropertyService(
		repo, trendingCache, logger, cfg.Catalog.TrendingLimit, cfg.Catalog.SimilarLimit)
	chatService := service.NewChatService(repo, logger)
	leadService := service.NewLeadService(repo)
	contentService := service.NewContentService(repo)
	adminService := service.NewAdminService(repo)

	// Initialize handlers
	propertyHandler := handler.NewPropertyHandler(propertyService, cfg.Catalog.MaxLimit)
	chatHandler := handler.NewChatHandler(chatService)
	leadHandler := handler.NewLeadHandler(leadService)
	contentHandler := handler.NewContentHandler(contentService)
	adminHandler := handler.NewAdminHandler(adminService)

	// Setup Gin router
	router := gin.New()
	router.Use(handler.RequestLogger(logger), gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "X-Trace-ID", "X-Actor"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "estates-backend",
			"version": Version,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Public catalog
		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/properties/:id", propertyHandler.Get)
		apiV1.GET("/properties/:id/similar", propertyHandler.Similar)
		apiV1.GET("/projects/trending", propertyHandler.Trending)

		// Assistant
		apiV1.POST("/chat", chatHandler.Message)
		apiV1.POST("/chat/open", chatHandler.Open)
		apiV1.POST("/chat/handoff/resolve", chatHandler.ResolveHandoff)
		apiV1.GET("/chat/:sessionId/history", chatHandler.History)

		// Lead capture and contact form
		apiV1.POST("/leads", leadHandler.CreateLead)
		apiV1.POST("/messages", leadHandler.CreateMessage)

		// Public CMS content
		apiV1.GET("/content/:key", contentHandler.Get)

		// Dashboard (authentication is handled by the gateway in front)
		admin := apiV1.Group("/admin")
		{
			admin.POST("/properties", propertyHandler.Create)
			admin.PUT("/properties/:id", propertyHandler.Update)
			admin.DELETE("/properties/:id", propertyHandler.Delete)

			admin.GET("/leads", leadHandler.ListLeads)
			admin.PATCH("/leads/:id/status", leadHandler.UpdateLeadStatus)
			admin.GET("/messages", leadHandler.ListMessages)

			admin.PUT("/content/:key", contentHandler.Upsert)

			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/activity", adminHandler.ListActivity)
			admin.GET("/analytics/summary", adminHandler.Analytics)
		}
	}

	// Serve static files (frontend)
	// Implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, logger)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "addr", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
