// Package page implements the HTML page handler.
package page

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/ortelius/userdir-backend/directory"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Index renders the directory page. A non-empty ?q= is handled as the explicit
// search action, so the minimum length guard applies to it.
func Index(ctrl *directory.Controller, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		view := NewPageView(ctrl.Locale(), ctrl.MinQueryLength())
		view.Query = query

		if !ctrl.Ready() {
			view.SetBusy(true)
			return render(c, view)
		}

		view.SetSearchEnabled(true)
		session := ctrl.WithView(view)

		// a key release without Enter only refreshes the trigger state
		_, _, _ = session.HandleEvent(directory.Event{Kind: directory.EventKeyUp, Text: query})

		if query != "" {
			if _, _, err := session.HandleEvent(directory.Event{Kind: directory.EventSubmit, Text: query}); err != nil {
				logger.Warn("Search failed", zap.String("query", query), zap.Error(err))
				view.ShowError(err)
			}
		}

		return render(c, view)
	}
}

func render(c *fiber.Ctx, view *PageView) error {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, view); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
