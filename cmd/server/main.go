package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gameshelf/backend/internal/api/controller"
	"gameshelf/backend/internal/api/repository"
	"gameshelf/backend/internal/api/service"
	"gameshelf/backend/internal/config"
	"gameshelf/backend/internal/db"
	"gameshelf/backend/internal/logger"
	"gameshelf/backend/internal/server"
	"gameshelf/backend/internal/telemetry"
	"gameshelf/backend/internal/validator"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdownTelemetry, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdownTelemetry(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.Development())

	// Open the store; refuse to start without it.
	pool, err := db.Connect(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}
	defer pool.Close()

	// Create repositories
	gameRepo := repository.NewGameRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Create services
	check := validator.New()
	gameService := service.NewGameService(gameRepo, check)
	userService := service.NewUserService(userRepo, []byte(cfg.JWTSecret))

	// Create controllers
	gameController := controller.NewGameController(gameService, cfg.Development())
	userController := controller.NewUserController(userService, cfg.Development())

	srv := server.NewServer(cfg, gameController, userController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Engine(),
	}

	go func() {
		slog.Info("http server started", "addr", cfg.Addr(), "env", cfg.Env)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exiting")
}
