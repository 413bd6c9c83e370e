package services

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrChangeFromDateInvalid = errors.New("change log invalid from date")
	ErrChangeToDateInvalid   = errors.New("change log invalid to date")
	ErrChangeRangeInvalid    = errors.New("change log invalid range")
)

// ParseChangeLogRange reads the optional from/to day filter of a change log
// export. Unlike picker options, a malformed filter is a request error.
func ParseChangeLogRange(rawFrom string, rawTo string, location *time.Location) (*time.Time, *time.Time, error) {
	from, err := parseOptionalDay(rawFrom, location, ErrChangeFromDateInvalid)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseOptionalDay(rawTo, location, ErrChangeToDateInvalid)
	if err != nil {
		return nil, nil, err
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, ErrChangeRangeInvalid
	}
	return from, to, nil
}

func parseOptionalDay(raw string, location *time.Location, invalid error) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(isoDayLayout, trimmed, location)
	if err != nil {
		return nil, invalid
	}
	normalized := DateAtLocation(parsed, location)
	return &normalized, nil
}
