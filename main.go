package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travel-backend/config"
	"travel-backend/controllers"
	"travel-backend/repository"
	"travel-backend/routes"
	"travel-backend/services"
	"travel-backend/utils"
)

func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	if !dotenv {
		logger.Info(".env not found or couldn't load it; continuing with environment variables")
	}
	gin.SetMode(cfg.Gin.Mode)

	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}

	// Repositories
	bookingRepo := repository.NewBookingRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	tokens := utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpire)
	allocator := services.NewOrderIDAllocator(bookingRepo, cfg.Booking.OrderIDAttempts)
	bookingService := services.NewBookingService(bookingRepo, packageRepo, allocator, logger.Named("bookings"))
	packageService := services.NewPackageService(packageRepo, bookingRepo, logger.Named("packages"))
	authService := services.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost, logger.Named("auth"))
	userService := services.NewUserService(userRepo, cfg.Auth.BcryptCost, logger.Named("users"))

	router := routes.SetupRouter(routes.Handlers{
		Auth:     controllers.NewAuthController(authService, logger),
		Packages: controllers.NewPackageController(packageService, logger),
		Bookings: controllers.NewBookingController(bookingService, logger),
		Users:    controllers.NewUserController(userService, logger),
		Tokens:   tokens,
		Lookup:   userService,
		Origins:  cfg.CORS.Origins,
		Log:      logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped gracefully")
}
