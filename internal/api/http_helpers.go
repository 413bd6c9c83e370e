package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError maps picker service failures onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPickerNotFound):
		return apiError(c, fiber.StatusNotFound, "picker not found")
	case errors.Is(err, services.ErrUnknownPreset):
		return apiError(c, fiber.StatusBadRequest, "unknown preset")
	case errors.Is(err, services.ErrWidgetNotMounted):
		return apiError(c, fiber.StatusConflict, "picker is not mounted")
	case errors.Is(err, services.ErrCommitNotSaved):
		return apiError(c, fiber.StatusServiceUnavailable, "selection not saved, try again")
	default:
		return apiError(c, fiber.StatusInternalServerError, "picker update failed")
	}
}

func parseBody(c *fiber.Ctx, target any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(target); err != nil {
		return fmt.Errorf("parse request body: %w", err)
	}
	return nil
}

func setAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
