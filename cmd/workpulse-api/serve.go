package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/workpulse/backend/internal/benchmark"
	"github.com/workpulse/backend/internal/config"
	"github.com/workpulse/backend/internal/handlers"
	"github.com/workpulse/backend/internal/logger"
	"github.com/workpulse/backend/internal/middleware"
	"github.com/workpulse/backend/internal/repository"
	"github.com/workpulse/backend/internal/service"
	"github.com/workpulse/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A missing .env is fine; config falls back to the real environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(cfg.Log.Backend, logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting workpulse api server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Benchmark grid: embedded default unless config points elsewhere.
	grid, err := benchmark.Default()
	if cfg.Benchmark.GridPath != "" {
		grid, err = benchmark.LoadFile(cfg.Benchmark.GridPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load benchmark grid: %w", err)
	}

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	intervalRepo := repository.NewIntervalRepository(supabaseClient)
	cohortRepo := repository.NewCohortRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)
	idempotencyRepo := repository.NewIdempotencyRepository(supabaseClient)

	// Initialize services
	intervalService := service.NewIntervalService(intervalRepo)
	cohortService := service.NewCohortService(cohortRepo)
	metricsService := service.NewMetricsService(intervalRepo, cohortService, grid)
	authService := service.NewAuthService(supabaseClient, userRepo)

	// Initialize handlers
	intervalHandler := handlers.NewIntervalHandler(intervalService)
	metricsHandler := handlers.NewMetricsHandler(metricsService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Interval routes; creates replay through idempotency keys so
			// offline clients can retry safely
			protected.GET("/intervals", intervalHandler.GetIntervals)
			protected.POST("/intervals", middleware.Idempotency(idempotencyRepo), intervalHandler.CreateInterval)
			protected.GET("/intervals/:id", intervalHandler.GetInterval)
			protected.PATCH("/intervals/:id", intervalHandler.UpdateInterval)
			protected.DELETE("/intervals/:id", intervalHandler.DeleteInterval)

			// Metrics routes
			protected.GET("/metrics", metricsHandler.GetReport)
			protected.GET("/metrics/windows", metricsHandler.GetWindows)
			protected.GET("/metrics/heatmap", metricsHandler.GetHeatmap)
			protected.GET("/metrics/streak", metricsHandler.GetStreak)
			protected.GET("/metrics/circadian", metricsHandler.GetCircadian)
			protected.GET("/metrics/recovery", metricsHandler.GetRecovery)
			protected.GET("/metrics/risk", metricsHandler.GetRisk)
			protected.GET("/metrics/cohort", metricsHandler.GetCohort)
			protected.GET("/metrics/benchmark", metricsHandler.GetBenchmark)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
