package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/naismart/naismart-backend/internal/services"
)

// RequireAuth guards routes that need a signed-in customer. The denial is
// deliberately uniform: it never says whether a session existed at all.
func RequireAuth(sessions *services.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state, err := sessions.Current(c)
		if err != nil || !state.Authenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "sign in required",
			})
		}

		c.Locals("session", state)
		return c.Next()
	}
}

// SessionState retrieves the state stored by RequireAuth
func SessionState(c *fiber.Ctx) *services.SessionState {
	state, _ := c.Locals("session").(*services.SessionState)
	return state
}
