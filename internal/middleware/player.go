package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
)

// EnsurePlayerID stores the caller's player ID in c.Locals("playerID"),
// taken from the X-Player-ID header or the playerId query parameter.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if playerID is already set
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			log.Debugf("rejecting %s %s without player ID", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		// Header and query values alias the request buffer, which fasthttp
		// reuses; the ID outlives the request in seats and connection maps.
		c.Locals("playerID", utils.CopyString(playerID))
		return c.Next()
	}
}
