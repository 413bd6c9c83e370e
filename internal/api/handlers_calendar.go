package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/services"
)

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	pickerID := currentPickerID(c)

	var (
		view services.CalendarView
		err  error
	)
	if rawMonth := strings.TrimSpace(c.Query("month")); rawMonth != "" {
		anchor, ok := services.ParseMonthAnchor(rawMonth)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		view, err = handler.pickers.JumpToMonth(pickerID, anchor)
	} else {
		view, err = handler.pickers.View(pickerID)
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"calendar": buildCalendarPayload(view)})
}

// NavigateCalendar shifts the two-month view by offset, or jumps to month when given.
func (handler *Handler) NavigateCalendar(c *fiber.Ctx) error {
	input := navigateInput{}
	if err := parseBody(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	pickerID := currentPickerID(c)
	var (
		view services.CalendarView
		err  error
	)
	if strings.TrimSpace(input.Month) != "" {
		anchor, ok := services.ParseMonthAnchor(strings.TrimSpace(input.Month))
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		view, err = handler.pickers.JumpToMonth(pickerID, anchor)
	} else {
		view, err = handler.pickers.Navigate(pickerID, input.Offset)
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"calendar": buildCalendarPayload(view)})
}
