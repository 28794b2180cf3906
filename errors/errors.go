package errors

import (
	"github.com/gofiber/fiber/v2"
)

func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{"error": message})
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message)
}

func RaiseInternalServerError(context *fiber.Ctx) error {
	return RaiseError(context, fiber.StatusInternalServerError, "Internal server error")
}
