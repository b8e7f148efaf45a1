// Package api assembles the Fiber application serving the directory.
package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/graphql"
	"github.com/ortelius/userdir-backend/model"
	"github.com/ortelius/userdir-backend/restapi"
	"github.com/ortelius/userdir-backend/util"
	"go.uber.org/zap"
)

// Options configure the HTTP surface
type Options struct {
	AllowOrigins string
	AccessLog    bool
}

// NewFiberApp creates and configures a Fiber app with the page, REST and GraphQL routes
func NewFiberApp(ctrl *directory.Controller, opts Options, log *zap.Logger) (*fiber.App, error) {
	schema, err := graphql.CreateSchema(ctrl)
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL schema: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "userdir-backend " + util.NormalizeVersion(util.Version),
		BodyLimit:             1 * 1024 * 1024, // 1MB
		ReadTimeout:           30 * time.Second,
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	if opts.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, HEAD, OPTIONS",
		}))
	}

	if opts.AccessLog {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("graphql_op", "-")
			return c.Next()
		})
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} - ${latency} ${method} ${path} ${locals:graphql_op}\n",
		}))
	}

	// Health check endpoint
	app.Get("/healthz", func(c *fiber.Ctx) error {
		status := "loading"
		if ctrl.Ready() {
			status = "healthy"
		}
		return c.JSON(model.HealthResponse{
			Status:  status,
			Ready:   ctrl.Ready(),
			Version: util.NormalizeVersion(util.Version),
			Records: ctrl.Total(),
		})
	})

	restapi.SetupRoutes(app, ctrl, schema, log)

	return app, nil
}
