package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vesteevolta/backend/internal/config"
	"github.com/vesteevolta/backend/internal/db"
	httpHandlers "github.com/vesteevolta/backend/internal/http/handlers"
	httpRouter "github.com/vesteevolta/backend/internal/http/router"
	"github.com/vesteevolta/backend/internal/logger"
	"github.com/vesteevolta/backend/internal/repository"
	"github.com/vesteevolta/backend/internal/service"
	"github.com/vesteevolta/backend/internal/ws"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatalf("main: failed to connect to database: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		logger.Log.Fatalf("main: migrations failed: %v", err)
	}

	// Nil when REDIS_ADDR is unset or unreachable; cache and limiter fall back to memory.
	rdb := db.NewRedis(ctx, cfg.Redis)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	cache := service.NewCacheService(rdb)
	defer cache.Close()

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)

	hub := ws.NewHub(ctx)
	go hub.Run()

	// Repositories.
	userRepo := repository.NewUserRepository(dbConn)
	categoryRepo := repository.NewCategoryRepository(dbConn)
	clothingRepo := repository.NewClothingRepository(dbConn)
	rentalRepo := repository.NewRentalRepository(dbConn)
	paymentRepo := repository.NewPaymentRepository(dbConn)
	ratingRepo := repository.NewRatingRepository(dbConn)
	reportRepo := repository.NewReportRepository(dbConn)

	// Services.
	clock := service.SystemClock{}
	authService := service.NewAuthService(userRepo, tokenManager)
	userService := service.NewUserService(userRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	clothingService := service.NewClothingService(clothingRepo, categoryRepo)
	rentalService := service.NewRentalService(rentalRepo, clothingRepo, clock, hub)
	paymentService := service.NewPaymentService(paymentRepo, rentalRepo, clock)
	ratingService := service.NewRatingService(ratingRepo, rentalRepo, clock)
	reportService := service.NewReportService(reportRepo, clock, hub)

	engine := httpRouter.SetupRouter(cfg, httpRouter.Handlers{
		Auth:     httpHandlers.NewAuthHandler(authService),
		User:     httpHandlers.NewUserHandler(userService),
		Catalog:  httpHandlers.NewCatalogHandler(categoryService),
		Clothing: httpHandlers.NewClothingHandler(clothingService),
		Rental:   httpHandlers.NewRentalHandler(rentalService),
		Payment:  httpHandlers.NewPaymentHandler(paymentService),
		Rating:   httpHandlers.NewRatingHandler(ratingService),
		Report:   httpHandlers.NewReportHandler(reportService),
		Health:   httpHandlers.NewHealthHandler(dbConn, rdb),
		WS:       httpHandlers.NewWSHandler(hub, tokenManager, cfg.AllowedOrigins),
	}, tokenManager, cache, rdb)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("main: http server shutdown failed")
		}
	}()

	logger.Log.WithField("port", cfg.HTTPPort).Info("main: HTTP server started")

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatalf("main: server exited with error: %v", err)
	}
}

func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		logger.Log.WithError(err).Error("main: failed to close database")
	}
}
