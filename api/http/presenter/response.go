package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/ai-service/pkg/generate"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string                `json:"message"`
	Errors  []generate.FieldError `json:"errors"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func Validation(c *fiber.Ctx, fields []generate.FieldError) error {
	return JSON(c, fiber.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: "validation failed",
		Errors:  fields,
	})
}
