package api

import (
	"path/filepath"
	"time"

	"campusbot/docs"
	"campusbot/internal/api/handlers"
	"campusbot/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowOrigins string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// StaticDir, when set, is served at /static with its index.html at /.
	StaticDir string
}

func SetupRouter(chatHandler *handlers.ChatHandler, cfg RouterConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.RequestIDHeader,
	}))
	app.Use(middleware.RequestLogger(appLogger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// importing docs registers the spec with swag
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Post("/chat", chatHandler.Chat)
	api.Get("/suggestions", chatHandler.Suggestions)
	api.Get("/knowledge", chatHandler.KnowledgeStats)

	if cfg.StaticDir != "" {
		appLogger.Info("Serving web interface", zap.String("path", cfg.StaticDir))
		app.Static("/static", cfg.StaticDir)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
		})
	}

	return app
}
