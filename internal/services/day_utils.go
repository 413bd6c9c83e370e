package services

import (
	"sort"
	"time"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// SameDay reports whether both dates are present and fall on the same calendar day.
func SameDay(a CalendarDate, b CalendarDate) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a == b
}

func IsFuture(date CalendarDate, today CalendarDate) bool {
	return !date.IsZero() && date.After(today)
}

// ValidationPolicy gates which days may be picked.
type ValidationPolicy struct {
	BlockFuture bool
	restricted  bool
	allowed     map[string]struct{}
}

// NewValidationPolicy builds a policy. The allow-list only restricts selection when
// it is enabled and non-empty; entries that do not parse as days never match.
func NewValidationPolicy(blockFuture bool, enableDistinctDates bool, distinctDates []string) ValidationPolicy {
	policy := ValidationPolicy{BlockFuture: blockFuture}
	if !enableDistinctDates || len(distinctDates) == 0 {
		return policy
	}

	policy.restricted = true
	policy.allowed = make(map[string]struct{}, len(distinctDates))
	for _, raw := range distinctDates {
		date, ok := ParseCalendarDate(raw)
		if !ok {
			continue
		}
		policy.allowed[date.String()] = struct{}{}
	}
	return policy
}

func (policy ValidationPolicy) Restricted() bool {
	return policy.restricted
}

// AllowedDates returns the parsed allow-list in ISO form, or nil when unrestricted.
func (policy ValidationPolicy) AllowedDates() []string {
	if !policy.restricted {
		return nil
	}
	keys := make([]string, 0, len(policy.allowed))
	for key := range policy.allowed {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (policy ValidationPolicy) Allows(date CalendarDate) bool {
	if date.IsZero() {
		return false
	}
	if !policy.restricted {
		return true
	}
	_, ok := policy.allowed[date.String()]
	return ok
}

// Selectable is the one predicate shared by click handling and disabled-cell rendering.
func (policy ValidationPolicy) Selectable(date CalendarDate, today CalendarDate) bool {
	if date.IsZero() {
		return false
	}
	if policy.BlockFuture && IsFuture(date, today) {
		return false
	}
	return policy.Allows(date)
}
