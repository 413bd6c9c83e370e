package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/rangepicker/internal/security"
)

// PickerTokenRequired admits requests whose bearer token was issued for the
// picker named in the path.
func (handler *Handler) PickerTokenRequired(c *fiber.Ctx) error {
	if !security.IsPickerID(c.Params("id")) {
		return apiError(c, fiber.StatusNotFound, "picker not found")
	}

	authorization := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, tokenValue, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	pickerID, err := handler.parsePickerToken(tokenValue)
	if err != nil || pickerID != c.Params("id") {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextPickerIDKey, pickerID)
	return c.Next()
}

func currentPickerID(c *fiber.Ctx) string {
	pickerID, _ := c.Locals(contextPickerIDKey).(string)
	return pickerID
}
