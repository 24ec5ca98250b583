package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"txn-search/internal/config"
	"txn-search/internal/database"
	"txn-search/internal/dictionary"
	"txn-search/internal/handlers"
	"txn-search/internal/interpreter"
	customMiddleware "txn-search/internal/middleware"
	"txn-search/internal/repositories"
	"txn-search/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	transactionRepo := repositories.NewTransactionRepository(db)

	dict := dictionary.Load()
	breaker := interpreter.NewCircuitBreaker(interpreter.CircuitBreakerConfig{
		MaxFailures:     cfg.Interpreter.BreakerMaxFailures,
		ResetTimeout:    cfg.Interpreter.BreakerResetTimeout,
		HalfOpenMaxSucc: interpreter.DefaultCircuitBreakerConfig().HalfOpenMaxSucc,
	})
	interpClient := interpreter.NewClient(cfg.Interpreter.BaseURL, dict, breaker)

	metrics := services.NewPrometheusMetrics()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			metrics.SetCircuitBreakerState(float64(breaker.GetState()))
		}
	}()

	searchService := services.NewSearchService(
		transactionRepo,
		interpClient,
		cfg.Interpreter.Timeout,
		services.NewSearchLogger(logger),
		metrics,
	)

	searchHandler := handlers.NewSearchHandler(searchService)
	transactionHandler := handlers.NewTransactionHandler(searchService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = customMiddleware.CustomHTTPErrorHandler

	e.Use(customMiddleware.RequestID())
	e.Use(customMiddleware.PanicRecovery())
	e.Use(customMiddleware.SecurityHeaders())
	e.Use(customMiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/transactions/search", searchHandler.Search)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler(transactionRepo)
		api.POST("/dev/accounts/:accountId/generate-test-data", devHandler.GenerateTestData)
	}

	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("Starting server", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
