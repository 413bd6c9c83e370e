package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/models"
)

func (handler *Handler) CreatePicker(c *fiber.Ctx) error {
	options := models.PickerOptions{}
	if err := parseBody(c, &options); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	snapshot, err := handler.pickers.Create(options)
	if err != nil {
		log.Printf("create picker failed: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create picker")
	}

	token, err := handler.issuePickerToken(snapshot.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"picker": buildPickerPayload(snapshot),
		"token":  token,
	})
}

func (handler *Handler) GetPicker(c *fiber.Ctx) error {
	snapshot, err := handler.pickers.Snapshot(currentPickerID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"picker": buildPickerPayload(snapshot)})
}

func (handler *Handler) DeletePicker(c *fiber.Ctx) error {
	if err := handler.pickers.Delete(currentPickerID(c)); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// RefreshPickerToken trades a still-valid token for one with a fresh expiry.
func (handler *Handler) RefreshPickerToken(c *fiber.Ctx) error {
	pickerID := currentPickerID(c)
	if _, err := handler.pickers.Snapshot(pickerID); err != nil {
		return serviceError(c, err)
	}

	token, err := handler.issuePickerToken(pickerID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(fiber.Map{
		"token":      token,
		"expires_at": handler.now().Add(handler.tokenTTL).UTC().Format(time.RFC3339),
	})
}
