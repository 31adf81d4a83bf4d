package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"toko-api/internal/config"
	"toko-api/internal/database"
	"toko-api/internal/handlers"
	"toko-api/internal/logging"
	"toko-api/internal/middleware"
	"toko-api/internal/repositories"
	"toko-api/internal/response"
	"toko-api/internal/services"
	"toko-api/pkg/rabbitmq"
)

const version = "1.0.0"

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := logging.New(cfg)

	// --- Database ---
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Error closing database")
		}
	}()

	// --- RabbitMQ ---
	// Order events are optional: without a broker orders are still created.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, order events disabled")
		} else {
			defer mqClient.Close()
			publisher = mqClient

			if err := mqClient.Consume("order_events", services.EventOrderCreated, rabbitmq.OrderEventLogger(log)); err != nil {
				log.WithError(err).Warn("Failed to start RabbitMQ consumer")
			}
		}
	}

	app, err := newApp(cfg, log, db, publisher)
	if err != nil {
		log.WithError(err).Fatal("Failed to create app")
	}

	// --- Start HTTP Server ---
	log.Infof("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("Error during Fiber shutdown")
	}
	log.Info("Server gracefully stopped")
}

// newApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil.
func newApp(cfg *config.Config, log *logrus.Logger, db *gorm.DB, publisher services.EventPublisher) (*fiber.App, error) {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	// --- Services ---
	tokens := services.NewTokenService(cfg.SecretKey)
	authService := services.NewAuthService(userRepo, tokens, cfg.TokenTTL)
	userService := services.NewUserService(userRepo)
	categoryService := services.NewCategoryService(categoryRepo, productRepo)
	productService := services.NewProductService(productRepo, categoryRepo, orderRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher, log)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)

	healthHandler, err := handlers.NewHealthHandler(version, handlers.HealthCheck{
		Name:    "database",
		Timeout: 3 * time.Second,
		Check: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      "toko-api",
		ErrorHandler: response.ErrorHandler(cfg.Production(), log),
	})

	// --- Middleware ---
	app.Use(recover.New(recover.Config{EnableStackTrace: !cfg.Production()}))
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.Metrics())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(corsConfig(cfg)))

	app.Get("/health", healthHandler)
	app.Get("/metrics", middleware.MetricsHandler())

	// --- API Routes ---
	api := app.Group("/api")

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst, log)
	stopCleanup := make(chan struct{})
	loginLimiter.StartCleanup(10*time.Minute, stopCleanup)
	app.Hooks().OnShutdown(func() error {
		close(stopCleanup)
		return nil
	})

	// Public routes
	authHandler.RegisterRoutes(api, loginLimiter.Handler())

	// Protected routes (require a bearer token). The gate is attached per
	// resource so unknown paths under /api still answer 404.
	authRequired := middleware.AuthRequired(tokens)
	userHandler.RegisterRoutes(api, authRequired)
	categoryHandler.RegisterRoutes(api, authRequired)
	productHandler.RegisterRoutes(api, authRequired)
	orderHandler.RegisterRoutes(api, authRequired)

	return app, nil
}

// corsConfig allows the configured frontend with credentials, or any origin without them.
func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}
	if cfg.FrontendURI != "" {
		c.AllowOrigins = cfg.FrontendURI
		c.AllowCredentials = true
	}
	return c
}
