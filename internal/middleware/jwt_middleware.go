package middleware

import (
	"strings"

	"lapak/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that verifies the bearer token and
// resolves it to an identity before any business logic runs. The resolved
// user ID is stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid or expired token",
			})
		}

		// ValidateToken guarantees user_id is a string claim.
		c.Locals("user_id", claims["user_id"].(string))

		return c.Next()
	}
}
