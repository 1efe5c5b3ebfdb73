package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taskmanager/docs"
	"taskmanager/internal/auth"
	"taskmanager/internal/cache"
	"taskmanager/internal/config"
	"taskmanager/internal/db"
	"taskmanager/internal/handler"
	"taskmanager/internal/logger"
	"taskmanager/internal/repository"
	"taskmanager/internal/router"
	"taskmanager/internal/service"
)

// @title Task Manager API
// @version 1.0
// @description Multi-user task manager with JWT authentication.
// @host localhost:8000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if cfg.UsesDefaultSecret() {
		zl.Warn("JWT_SECRET is not set, tokens are signed with the development default")
	}

	gormDB, err := db.NewMySQL(cfg.Database, zl)
	if err != nil {
		zl.Fatal("database init", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		zl.Fatal("database migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, zl)
	defer cacheClient.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.Auth.BcryptCost)
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo)

	e := echo.New()
	router.Register(
		e,
		cfg,
		zl,
		auth.NewMiddleware(jwtService, tokenStore),
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewTaskHandler(taskService),
	)

	if cfg.SwaggerHost != "" {
		// SWAGGER_HOST may carry a scheme; the swagger host field is host[:port] only.
		host := strings.TrimPrefix(cfg.SwaggerHost, "https://")
		docs.SwaggerInfo.Host = strings.TrimPrefix(host, "http://")
	}
	zl.Info("swagger documentation available", zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	go func() {
		addr := ":" + cfg.ServerPort
		zl.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server start", zap.Error(err))
		}
	}()

	waitForShutdown(zl)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
