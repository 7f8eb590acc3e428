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

	"byteBrosStore/app/echo-server/router"
	"byteBrosStore/business/catalog"
	"byteBrosStore/business/orders"
	"byteBrosStore/business/support"
	userService "byteBrosStore/business/user"
	"byteBrosStore/internal/middleware"
	psqlRepo "byteBrosStore/internal/repository/postgres"
	redisRepo "byteBrosStore/internal/repository/redis"
	"byteBrosStore/internal/rest"
	"byteBrosStore/pkg/config"
	"byteBrosStore/pkg/database"
	redisdb "byteBrosStore/pkg/database/redis"
	"byteBrosStore/pkg/logger"
	"byteBrosStore/pkg/metrics"
	"byteBrosStore/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting ByteBros Store API", "version", cfg.App.Version)

	metrics.Init()

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(cfg); err != nil {
			logger.Fatal("Failed to run migrations", "error", err)
		}
		logger.Info("Migrations applied")
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Optional listing cache
	var listingCache catalog.ListingCache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", "error", err)
		}
		defer func() {
			_ = redisdb.CloseRedisClient(redisClient)
		}()

		listingCache = redisRepo.NewCatalogCache(redisClient, time.Minute)
		logger.Info("Listing cache enabled")
	}

	// Init validate
	validate := validator.New()

	// Token manager
	tokens := token.NewManager(cfg.JWT.SecretKey, token.DefaultTTL)

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	productRepo := psqlRepo.NewProductRepository(db)
	newsRepo := psqlRepo.NewNewsRepository(db)
	supportRepo := psqlRepo.NewSupportRepository(db)

	// Init service
	usersService := userService.NewUserService(userRepo, validate, tokens, cfg.Auth.ExposeEmailConflict)
	ordersService := orders.NewOrdersService(ordersRepo)
	catalogService := catalog.NewCatalogService(productRepo, newsRepo, listingCache)
	supportService := support.NewSupportService(supportRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usersService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	productHandler := rest.NewProductHandler(catalogService)
	newsHandler := rest.NewNewsHandler(catalogService)
	supportHandler := rest.NewSupportHandler(supportService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "API da ByteBros.TI no ar! Tudo funcionando.")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api")
	router.SetupAuthRoutes(api, userHandler)
	router.SetupCatalogRoutes(api, productHandler, newsHandler, authRequired, adminOnly)
	router.SetupSupportRoutes(api, supportHandler)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
