package handlers

import (
	"errors"
	"log"

	"lapak/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the response envelope. Validation
// failures include the per-field messages; anything outside the taxonomy
// becomes a generic 500 so internal detail never reaches the client.
func respondError(c *fiber.Ctx, err error, internalMessage string) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	}

	var authErr *apperrors.AuthError
	if errors.As(err, &authErr) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": authErr.Message,
		})
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": conflictErr.Message,
		})
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": notFoundErr.Error(),
		})
	}

	log.Printf("%s: %v", internalMessage, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": internalMessage,
	})
}

// respondBadBody is the envelope for an unparseable request body.
func respondBadBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Invalid request body",
	})
}

// currentUserID reads the authenticated user ID the middleware stored on the
// request.
func currentUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}
