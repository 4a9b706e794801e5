package config

import (
	"io"
	"time"

	"Recipe-Publisher/internal/api/handlers"
	"Recipe-Publisher/internal/api/routes"
	"Recipe-Publisher/pkg/content"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type AppOptions struct {
	// AccessLog receives one line per request. Nil disables the access log.
	AccessLog io.Writer
	// RateLimit is the number of requests per second allowed per client; 0 disables it.
	RateLimit int
}

func NewApp(contentService content.ContentService, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "UTC",
			Output:     opts.AccessLog,
		}))
	}

	if opts.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimit,
			Expiration: 1 * time.Second,
		}))
	}

	// Handler
	contentHandler := handlers.NewContentHandler(contentService)

	// routes
	routesConfig := routes.Config{
		App:            app,
		ContentHandler: contentHandler,
	}
	routesConfig.Setup()
	return app
}
