package services

import (
	"testing"
	"time"
)

func TestDayRangeNormalizesToLocationMidnight(t *testing.T) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	raw := time.Date(2026, 2, 1, 19, 35, 10, 0, time.UTC)
	start, end := DayRange(raw, location)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Fatalf("expected midnight start, got %s", start.Format(time.RFC3339))
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("expected next day end, got %s", end.Format(time.RFC3339))
	}
	if start.Format("2006-01-02") != "2026-02-01" {
		t.Fatalf("expected 2026-02-01, got %s", start.Format("2006-01-02"))
	}
}

func TestSameDayTreatsAbsentAsUnequal(t *testing.T) {
	date := NewCalendarDate(2024, time.June, 10)
	if !SameDay(date, NewCalendarDate(2024, time.June, 10)) {
		t.Fatal("expected equal days to match")
	}
	if SameDay(CalendarDate{}, CalendarDate{}) {
		t.Fatal("expected two absent dates not to match")
	}
}

func TestValidationPolicySelectable(t *testing.T) {
	today := NewCalendarDate(2024, time.June, 15)

	tests := []struct {
		name   string
		policy ValidationPolicy
		date   CalendarDate
		want   bool
	}{
		{
			name:   "unrestricted past day",
			policy: NewValidationPolicy(false, false, nil),
			date:   NewCalendarDate(2024, time.June, 1),
			want:   true,
		},
		{
			name:   "future allowed without block",
			policy: NewValidationPolicy(false, false, nil),
			date:   NewCalendarDate(2024, time.June, 20),
			want:   true,
		},
		{
			name:   "future blocked",
			policy: NewValidationPolicy(true, false, nil),
			date:   NewCalendarDate(2024, time.June, 20),
			want:   false,
		},
		{
			name:   "today is never future",
			policy: NewValidationPolicy(true, false, nil),
			date:   today,
			want:   true,
		},
		{
			name:   "allow-list hit",
			policy: NewValidationPolicy(false, true, []string{"2024-06-03"}),
			date:   NewCalendarDate(2024, time.June, 3),
			want:   true,
		},
		{
			name:   "allow-list miss",
			policy: NewValidationPolicy(false, true, []string{"2024-06-03"}),
			date:   NewCalendarDate(2024, time.June, 4),
			want:   false,
		},
		{
			name:   "allow-list ignored when disabled",
			policy: NewValidationPolicy(false, false, []string{"2024-06-03"}),
			date:   NewCalendarDate(2024, time.June, 4),
			want:   true,
		},
		{
			name:   "empty allow-list does not restrict",
			policy: NewValidationPolicy(false, true, nil),
			date:   NewCalendarDate(2024, time.June, 4),
			want:   true,
		},
		{
			name:   "allow-listed future day still blocked",
			policy: NewValidationPolicy(true, true, []string{"2024-06-20"}),
			date:   NewCalendarDate(2024, time.June, 20),
			want:   false,
		},
		{
			name:   "absent date",
			policy: NewValidationPolicy(false, false, nil),
			date:   CalendarDate{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Selectable(tt.date, today); got != tt.want {
				t.Fatalf("Selectable(%s) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestValidationPolicySkipsUnparsableAllowListEntries(t *testing.T) {
	policy := NewValidationPolicy(false, true, []string{"garbage", "2024-06-03T10:00:00Z", "2024-06-01"})

	if !policy.Restricted() {
		t.Fatal("expected policy to be restricted")
	}
	got := policy.AllowedDates()
	if len(got) != 2 || got[0] != "2024-06-01" || got[1] != "2024-06-03" {
		t.Fatalf("unexpected allowed dates %v", got)
	}
	if policy.Allows(NewCalendarDate(2024, time.June, 2)) {
		t.Fatal("expected unlisted date to be rejected")
	}
}
