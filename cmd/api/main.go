package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hotelops/hotel-ops-api/internal/api"
	"github.com/hotelops/hotel-ops-api/internal/config"
	"github.com/hotelops/hotel-ops-api/internal/middleware"
	"github.com/hotelops/hotel-ops-api/internal/repository"
	"github.com/hotelops/hotel-ops-api/internal/repository/memory"
	"github.com/hotelops/hotel-ops-api/internal/repository/postgres"
	"github.com/hotelops/hotel-ops-api/internal/service"
	"github.com/hotelops/hotel-ops-api/internal/service/pubsub"
	"github.com/hotelops/hotel-ops-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	repo, cleanup, err := buildRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage backend", err)
	}
	defer cleanup()

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize services
	tenantService := service.NewTenantService(repo)
	taskService := service.NewTaskService(repo)
	orderService := service.NewOrderService(repo, redisPubSub, appLogger)
	menuService := service.NewMenuService(repo)
	purchaseOrderService := service.NewPurchaseOrderService(repo)
	invoiceService := service.NewInvoiceService(repo)
	accountService := service.NewAccountService(repo)
	employeeService := service.NewEmployeeService(repo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, repo.Tenants(), appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		tenantService,
		taskService,
		orderService,
		menuService,
		purchaseOrderService,
		invoiceService,
		accountService,
		employeeService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		redisPubSub,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.GetWebSocketHandler().Stop()

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}

// buildRepository selects the storage backend. Postgres is the production
// default; the memory backend serves local development without a database.
func buildRepository(cfg *config.Config, appLogger *logger.Logger) (repository.Repository, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		appLogger.Info("Using in-memory storage backend")
		return memory.NewRepository(), func() {}, nil

	case config.StoreBackendPostgres:
		dbConnections, err := config.NewDatabaseConnections()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		appLogger.Info("Database connections established - writer and reader connected")
		return postgres.NewPostgresRepository(dbConnections), func() { dbConnections.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
