package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func (handler *Handler) ListPresets(c *fiber.Ctx) error {
	today := handler.pickers.Today()

	presets := make([]presetPayload, 0)
	for _, preset := range services.PresetCatalog() {
		dateRange := preset.Range(today)
		presets = append(presets, presetPayload{
			Label: preset.Label,
			Start: dateRange.Start.String(),
			End:   dateRange.End.String(),
		})
	}
	return c.JSON(fiber.Map{"today": today.String(), "presets": presets})
}
