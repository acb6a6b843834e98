package handlers

import (
	"strings"

	"photo-backend/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Every failure mode (no header, malformed header, bad signature, expiry)
// answers with the same body so clients learn nothing about which check failed.
const unauthorizedMsg = "Missing or invalid token"

// AuthMiddleware verifies the bearer token and stores the authenticated user
// id in locals for downstream handlers.
func AuthMiddleware(tokens *services.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(msg(unauthorizedMsg))
		}

		userID, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(msg(unauthorizedMsg))
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
