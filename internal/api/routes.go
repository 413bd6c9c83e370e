package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")
	api.Get("/presets", handler.ListPresets)
	api.Post("/pickers", handler.CreatePicker)

	picker := api.Group("/pickers/:id", handler.PickerTokenRequired)
	picker.Get("", handler.GetPicker)
	picker.Delete("", handler.DeletePicker)
	picker.Post("/token", handler.RefreshPickerToken)
	picker.Get("/calendar", handler.GetCalendar)
	picker.Post("/navigate", handler.NavigateCalendar)
	picker.Post("/toggle", handler.TogglePicker)
	picker.Post("/open", handler.OpenPicker)
	picker.Post("/click", handler.ClickDate)
	picker.Post("/preset", handler.ApplyPreset)
	picker.Post("/mode", handler.ToggleMode)
	picker.Post("/confirm", handler.ConfirmSelection)
	picker.Post("/cancel", handler.CancelSelection)
	picker.Post("/outside", handler.OutsideInteraction)
	picker.Post("/align", handler.AlignDropdown)

	changes := picker.Group("/changes")
	changes.Get("", handler.ExportChangesJSON)
	changes.Get("/csv", handler.ExportChangesCSV)
	changes.Get("/xlsx", handler.ExportChangesXLSX)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
