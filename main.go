// File: hrp/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrp/config"
	"hrp/database"
	catalogRepoPkg "hrp/database/repository/catalog"
	orderRepoPkg "hrp/database/repository/order"
	"hrp/handlers"
	"hrp/middleware"
	"hrp/routes"
	"hrp/services/booking"
	"hrp/services/catalog"
	"hrp/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	orderRecords := orderRepoPkg.NewMongoOrderRepo()

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := catalogRepo.SeedIfEmpty(seedCtx, catalog.SeedEntries); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}
	seedCancel()

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionRepo := booking.NewRedisSessionRepository(utils.GetSessionCacheClient(), sessionTTL)
	orderArchive := booking.NewRedisOrderArchive(utils.GetOrderCacheClient())

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:   catalogRepo,
		Logger: logger,
	}

	bookingService := &booking.DefaultSessionService{
		Sessions:      sessionRepo,
		Archive:       orderArchive,
		Records:       orderRecords,
		Logger:        logger,
		CheckoutDelay: time.Duration(config.AppConfig.CheckoutDelayMS) * time.Millisecond,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, catalogService, orderRecords, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking: bookingHandler,
		Catalog: catalogHandler,
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetOrderCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
