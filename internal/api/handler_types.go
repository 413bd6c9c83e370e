package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/rangepicker/internal/models"
)

const (
	defaultPickerTokenTTL = 24 * time.Hour
	pickerTokenPurpose    = "picker"
	contextPickerIDKey    = "picker_id"
)

type pickerTokenClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

type clickInput struct {
	Date string `json:"date" form:"date"`
}

type presetInput struct {
	Label string `json:"label" form:"label"`
}

type navigateInput struct {
	Offset int    `json:"offset" form:"offset"`
	Month  string `json:"month" form:"month"`
}

type alignInput struct {
	RightEdge     float64 `json:"right_edge" form:"right_edge"`
	ViewportWidth float64 `json:"viewport_width" form:"viewport_width"`
}

type selectionPayload struct {
	Mode         string   `json:"mode"`
	Cursor       string   `json:"cursor"`
	Start        *string  `json:"start"`
	End          *string  `json:"end"`
	CompareDates []string `json:"compare_dates"`
}

type pickerPayload struct {
	ID          string               `json:"id"`
	Summary     string               `json:"summary"`
	ButtonLabel string               `json:"button_label"`
	Editing     bool                 `json:"editing"`
	CanConfirm  bool                 `json:"can_confirm"`
	AlignLeft   bool                 `json:"align_left"`
	Committed   selectionPayload     `json:"committed"`
	Draft       selectionPayload     `json:"draft"`
	Options     models.PickerOptions `json:"options"`
}

type calendarCellPayload struct {
	Date            *string `json:"date"`
	Day             int     `json:"day,omitempty"`
	IsToday         bool    `json:"is_today"`
	IsSelected      bool    `json:"is_selected"`
	IsInRange       bool    `json:"is_in_range"`
	IsCompareMarked bool    `json:"is_compare_selected"`
	Disabled        bool    `json:"disabled"`
}

type calendarMonthPayload struct {
	Label string                `json:"label"`
	Month string                `json:"month"`
	Cells []calendarCellPayload `json:"cells"`
}

type calendarPayload struct {
	Month      string                 `json:"month"`
	PrevMonth  string                 `json:"prev_month"`
	NextMonth  string                 `json:"next_month"`
	Mode       string                 `json:"mode"`
	Cursor     string                 `json:"cursor"`
	Editing    bool                   `json:"editing"`
	AlignLeft  bool                   `json:"align_left"`
	CanConfirm bool                   `json:"can_confirm"`
	Months     []calendarMonthPayload `json:"months"`
}

type presetPayload struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}
