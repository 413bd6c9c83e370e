package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func (handler *Handler) TogglePicker(c *fiber.Ctx) error {
	return respondAction(c)(handler.pickers.Toggle(currentPickerID(c)))
}

func (handler *Handler) OpenPicker(c *fiber.Ctx) error {
	return respondAction(c)(handler.pickers.Open(currentPickerID(c)))
}

func (handler *Handler) ClickDate(c *fiber.Ctx) error {
	input := clickInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	return respondAction(c)(handler.pickers.Click(currentPickerID(c), input.Date))
}

func (handler *Handler) ApplyPreset(c *fiber.Ctx) error {
	input := presetInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	return respondAction(c)(handler.pickers.ApplyPreset(currentPickerID(c), input.Label))
}

func (handler *Handler) ToggleMode(c *fiber.Ctx) error {
	return respondAction(c)(handler.pickers.ToggleMode(currentPickerID(c)))
}

func (handler *Handler) ConfirmSelection(c *fiber.Ctx) error {
	return respondAction(c)(handler.pickers.Confirm(currentPickerID(c)))
}

func (handler *Handler) CancelSelection(c *fiber.Ctx) error {
	return respondAction(c)(handler.pickers.Cancel(currentPickerID(c)))
}

func (handler *Handler) OutsideInteraction(c *fiber.Ctx) error {
	return respondAction(c)(handler.pickers.ReportOutsideInteraction(currentPickerID(c)))
}

func (handler *Handler) AlignDropdown(c *fiber.Ctx) error {
	input := alignInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	geometry := services.ViewportGeometry{RightEdge: input.RightEdge, ViewportWidth: input.ViewportWidth}
	return respondAction(c)(handler.pickers.Align(currentPickerID(c), geometry))
}

// respondAction writes {"applied", "picker"}; policy rejections still answer 200.
func respondAction(c *fiber.Ctx) func(result services.ActionResult, err error) error {
	return func(result services.ActionResult, err error) error {
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"applied": result.Applied,
			"picker":  buildPickerPayload(result.Snapshot),
		})
	}
}
