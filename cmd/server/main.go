package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/makeasinger/briefgen/internal/artist"
	"github.com/makeasinger/briefgen/internal/config"
	"github.com/makeasinger/briefgen/internal/logging"
	"github.com/makeasinger/briefgen/internal/server"
	"github.com/makeasinger/briefgen/internal/service"
	ws "github.com/makeasinger/briefgen/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Server.LogLevel, cfg.Server.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Redis only backs rate limiting; the API works without it.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis not available, rate limiting disabled", zap.Error(err))
			redisClient.Close()
			redisClient = nil
		}
		cancel()
	}

	var names *artist.Generator
	if cfg.Generator.Seed != 0 {
		names = artist.NewSeededGenerator(cfg.Generator.Seed)
		logger.Info("Similar-name generator seeded", zap.Uint64("seed", cfg.Generator.Seed))
	} else {
		names = artist.NewGenerator(nil)
	}

	promptService := service.NewPromptService(names, nil, nil, logger, cfg.Generator.BatchLimit).
		WithDefaultLevel(cfg.Generator.DefaultLevel)
	exportService := service.NewExportService(promptService)

	hub := ws.NewHub(promptService, logger)
	go hub.Run()

	app := server.New(server.Options{
		JWTSecret:     cfg.JWT.Secret,
		AuthRequired:  cfg.Auth.Required,
		PromptPerMin:  cfg.RateLimit.PromptPerMin,
		ExportPerHour: cfg.RateLimit.ExportPerHour,
		LogLevel:      cfg.Server.LogLevel,
		AccessLog:     true,
	}, server.Deps{
		Prompts: promptService,
		Exports: exportService,
		Hub:     hub,
		Redis:   redisClient,
		Logger:  logger,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("Server shutdown error", zap.Error(err))
		}
		hub.Stop()
		if redisClient != nil {
			redisClient.Close()
		}
	}()

	addr := ":" + cfg.Server.Port
	logger.Info("Server starting",
		zap.String("addr", addr),
		zap.Bool("authRequired", cfg.Auth.Required),
		zap.String("defaultLevel", string(cfg.Generator.DefaultLevel)))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
