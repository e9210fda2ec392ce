package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/RaulSimioni/Sistema-Academia/internal/services"
)

// success wraps a created entity in the structured result shape every form
// submission returns: a status discriminator plus a human-readable message.
func success(c *fiber.Ctx, message, key string, entity any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		key:       entity,
	})
}

func failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// serviceError recovers every service-level error into a structured failure
// result; nothing propagates to a generic top-level handler.
func serviceError(c *fiber.Ctx, err error) error {
	var dup *services.DuplicateError
	if errors.As(err, &dup) {
		return failure(c, fiber.StatusConflict, dup.Error())
	}
	var unresolved *services.UnresolvedError
	if errors.As(err, &unresolved) {
		return failure(c, fiber.StatusNotFound, unresolved.Error())
	}
	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		return failure(c, fiber.StatusBadRequest, invalid.Error())
	}
	return failure(c, fiber.StatusInternalServerError, "store unavailable")
}
