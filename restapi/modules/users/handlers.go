// Package users implements the REST API handlers for directory queries.
package users

import (
	"errors"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/userdir-backend/directory"
	"github.com/ortelius/userdir-backend/model"
)

// MaxQueryLength bounds the q parameter
const MaxQueryLength = 256

// Directory is the session state the handlers read from
type Directory interface {
	Query(query string) (directory.SearchResult, error)
	Ready() bool
	Locale() string
}

// RequireReady answers 503 until the initial load and settle delay are over
func RequireReady(dir Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !dir.Ready() {
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(model.ErrorResponse{
				Error: directory.ErrNotLoaded.Error(),
			})
		}
		return c.Next()
	}
}

// ListUsers returns the records matching ?q= in directory order. An empty q returns every record.
func ListUsers(dir Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := query(c, dir)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(model.UserListResponse{
			Query: result.Query,
			Count: len(result.Users),
			Users: result.Users,
		})
	}
}

// GetStatistics returns the statistics of the records matching ?q=
func GetStatistics(dir Directory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result, err := query(c, dir)
		if err != nil {
			return respondError(c, err)
		}

		return c.JSON(model.StatisticsResponse{
			Query:     result.Query,
			Count:     len(result.Users),
			Locale:    dir.Locale(),
			Stats:     result.Stats,
			Formatted: result.Formatted,
		})
	}
}

var errQueryTooLong = errors.New("query too long")

func query(c *fiber.Ctx, dir Directory) (directory.SearchResult, error) {
	q := c.Query("q")
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return directory.SearchResult{}, errQueryTooLong
	}
	return dir.Query(q)
}

func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errQueryTooLong):
		status = fiber.StatusBadRequest
	case errors.Is(err, directory.ErrNotLoaded):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(model.ErrorResponse{Error: err.Error()})
}
