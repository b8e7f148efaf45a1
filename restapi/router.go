// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/restapi/modules/page"
	"github.com/ortelius/userdir-backend/restapi/modules/users"
	"go.uber.org/zap"
)

// SetupRoutes configures the HTML page, the REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, ctrl *directory.Controller, schema graphql.Schema, logger *zap.Logger) {
	// HTML view
	app.Get("/", page.Index(ctrl, logger))

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL answers readiness errors per field, so it is not behind RequireReady
	api.Post("/graphql", GraphQLHandler(schema))

	api.Get("/users", users.RequireReady(ctrl), users.ListUsers(ctrl))
	api.Get("/statistics", users.RequireReady(ctrl), users.GetStatistics(ctrl))

	logger.Info("API routes initialized successfully")
}
