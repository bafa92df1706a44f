// Package server wires handlers and middleware into a fiber app.
package server

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/makeasinger/briefgen/internal/handler"
	"github.com/makeasinger/briefgen/internal/middleware"
	"github.com/makeasinger/briefgen/internal/service"
	ws "github.com/makeasinger/briefgen/internal/websocket"
	"github.com/makeasinger/briefgen/pkg/response"
)

// Options carries the knobs main reads from config
type Options struct {
	JWTSecret     string
	AuthRequired  bool
	PromptPerMin  int
	ExportPerHour int
	LogLevel      string
	AccessLog     bool
}

// Deps are the long-lived collaborators. Redis may be nil.
type Deps struct {
	Prompts *service.PromptService
	Exports *service.ExportService
	Hub     *ws.Hub
	Redis   *redis.Client
	Logger  *zap.Logger
}

// New builds the fiber app with every route registered
func New(opts Options, deps Deps) *fiber.App {
	validate := validator.New()

	promptHandler := handler.NewPromptHandler(deps.Prompts, validate)
	lyricsHandler := handler.NewLyricsHandler(deps.Prompts, validate)
	artistHandler := handler.NewArtistHandler(deps.Prompts, validate)
	exportHandler := handler.NewExportHandler(deps.Exports, validate)

	authMiddleware := middleware.NewAuthMiddleware(opts.JWTSecret, opts.AuthRequired)
	rateLimiter := middleware.NewRateLimiter(deps.Redis, deps.Logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    1 * 1024 * 1024,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		logFormat := "[${time}] ${status} - ${latency} ${method} ${path}\n"
		if strings.EqualFold(opts.LogLevel, "debug") {
			logFormat = "[${time}] ${status} - ${latency} ${method} ${path} ${queryParams} ${body}\n"
		}
		app.Use(logger.New(logger.Config{
			Format: logFormat,
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"timestamp": time.Now().Unix(),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		sessions := 0
		if deps.Hub != nil {
			sessions = deps.Hub.ActiveSessions()
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"services": fiber.Map{
				"redis": redisUp(c.UserContext(), deps.Redis),
				"auth":  opts.JWTSecret != "",
			},
			"previewSessions": sessions,
		})
	})

	api := app.Group("/api", authMiddleware.Authenticate())

	api.Get("/form/defaults", promptHandler.Defaults)

	prompt := api.Group("/prompt", rateLimiter.PromptLimit(opts.PromptPerMin))
	prompt.Post("/generate", promptHandler.Generate)
	prompt.Post("/batch", promptHandler.Batch)

	api.Post("/artist/similar", rateLimiter.PromptLimit(opts.PromptPerMin), artistHandler.Similar)
	api.Post("/lyrics/validate", rateLimiter.PromptLimit(opts.PromptPerMin), lyricsHandler.Validate)
	api.Post("/style/optimize", rateLimiter.PromptLimit(opts.PromptPerMin), promptHandler.Style)

	export := api.Group("/export", rateLimiter.ExportLimit(opts.ExportPerHour))
	export.Post("/json", exportHandler.JSON)
	export.Post("/txt", exportHandler.Text)

	if deps.Hub != nil {
		app.Use("/ws", func(c *fiber.Ctx) error {
			if websocket.IsWebSocketUpgrade(c) {
				return c.Next()
			}
			return fiber.ErrUpgradeRequired
		})

		app.Get("/ws/preview", websocket.New(deps.Hub.HandleConnection))
	}

	return app
}

func redisUp(ctx context.Context, client *redis.Client) bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	errCode := response.CodeServiceError
	if code == fiber.StatusNotFound {
		errCode = response.CodeNotFound
	}
	return response.Error(c, code, errCode, message, nil)
}
