package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/middleware"
)

// Page serving is out of scope for the API; these endpoints return the page
// descriptor the frontend renders from.

// PublicPage serves an unauthenticated page descriptor
func PublicPage(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"page": name,
		})
	}
}

// PrivatePage serves a gated page descriptor. It sits behind RequireAuth, so
// the session state is always present here.
func PrivatePage(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := middleware.SessionState(c)
		return c.JSON(fiber.Map{
			"page": name,
			"name": state.Name,
		})
	}
}
