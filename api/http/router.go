package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/kirana/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. Storefront routes run
// behind the session middleware; probes and metrics do not.
func Register(app *fiber.App, sessionMW fiber.Handler, page *handlers.PageHandler, chat *handlers.ChatHandler, health *handlers.HealthHandler, metrics fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)
	if metrics != nil {
		app.Get("/metrics", metrics)
	}

	app.Get("/inventory", page.Inventory)
	app.Get("/", sessionMW, page.Index)

	app.Post("/set_key_ajax", sessionMW, chat.SetKey)
	app.Post("/ajax_chat", sessionMW, chat.Chat)
	app.Post("/clear_history", sessionMW, chat.ClearHistory)
	app.Get("/history", sessionMW, chat.History)
}
