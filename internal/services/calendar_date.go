package services

import (
	"strings"
	"time"
)

const (
	isoDayLayout     = "2006-01-02"
	displayDayLayout = "Mon Jan 02 2006"
)

// CalendarDate is a single calendar day. The zero value means "no date".
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate normalizes overflowing months and days the way time.Date does.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	normalized := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return CalendarDate{Year: normalized.Year(), Month: normalized.Month(), Day: normalized.Day()}
}

func CalendarDateOf(value time.Time, location *time.Location) CalendarDate {
	localized := DateAtLocation(value, location)
	return CalendarDate{Year: localized.Year(), Month: localized.Month(), Day: localized.Day()}
}

// ParseCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp. Anything else is
// reported as absent instead of failing.
func ParseCalendarDate(raw string) (CalendarDate, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CalendarDate{}, false
	}
	if parsed, err := time.Parse(isoDayLayout, trimmed); err == nil {
		return CalendarDateOf(parsed, time.UTC), true
	}
	if parsed, err := time.Parse(time.RFC3339, trimmed); err == nil {
		year, month, day := parsed.Date()
		return CalendarDate{Year: year, Month: month, Day: day}, true
	}
	return CalendarDate{}, false
}

func (date CalendarDate) IsZero() bool {
	return date == CalendarDate{}
}

func (date CalendarDate) Time(location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	return time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, location)
}

func (date CalendarDate) AddDays(days int) CalendarDate {
	return NewCalendarDate(date.Year, date.Month, date.Day+days)
}

// Compare returns -1, 0 or 1 ordering by calendar day.
func (date CalendarDate) Compare(other CalendarDate) int {
	switch {
	case date.Year != other.Year:
		return compareInts(date.Year, other.Year)
	case date.Month != other.Month:
		return compareInts(int(date.Month), int(other.Month))
	default:
		return compareInts(date.Day, other.Day)
	}
}

func (date CalendarDate) Before(other CalendarDate) bool {
	return date.Compare(other) < 0
}

func (date CalendarDate) After(other CalendarDate) bool {
	return date.Compare(other) > 0
}

// String returns the ISO day key, or "" for the zero date.
func (date CalendarDate) String() string {
	if date.IsZero() {
		return ""
	}
	return date.Time(time.UTC).Format(isoDayLayout)
}

// DisplayString renders the date for summary labels, e.g. "Mon Jun 10 2024".
func (date CalendarDate) DisplayString() string {
	if date.IsZero() {
		return ""
	}
	return date.Time(time.UTC).Format(displayDayLayout)
}

func (date CalendarDate) MarshalText() ([]byte, error) {
	return []byte(date.String()), nil
}

func (date *CalendarDate) UnmarshalText(text []byte) error {
	parsed, _ := ParseCalendarDate(string(text))
	*date = parsed
	return nil
}

func compareInts(left int, right int) int {
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	default:
		return 0
	}
}
