// Package validate checks tool arguments before any network call is made.
// All functions are pure: no I/O, no shared state.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/pablomv/esios-mcp/internal/models"
)

// ArgumentError names the offending field so the caller can correct it.
type ArgumentError struct {
	Field  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// Query requires a non-empty search term.
func Query(q string) error {
	if strings.TrimSpace(q) == "" {
		return &ArgumentError{Field: "query", Reason: "must be a non-empty string"}
	}
	return nil
}

// IndicatorID requires a positive indicator identifier.
func IndicatorID(id int) error {
	if id <= 0 {
		return &ArgumentError{Field: "indicator_id", Reason: "must be a positive integer"}
	}
	return nil
}

// ParseDateRange parses both endpoints and checks their ordering. Accepted
// formats are RFC3339 and plain dates (2006-01-02).
func ParseDateRange(start, end string) (models.DateRange, error) {
	startT, err := parseTimestamp(start)
	if err != nil {
		return models.DateRange{}, &ArgumentError{Field: "start_date", Reason: err.Error()}
	}
	endT, err := parseTimestamp(end)
	if err != nil {
		return models.DateRange{}, &ArgumentError{Field: "end_date", Reason: err.Error()}
	}
	if startT.After(endT) {
		return models.DateRange{}, &ArgumentError{Field: "start_date", Reason: "must not be after end_date"}
	}
	return models.DateRange{Start: startT, End: endT}, nil
}

// TimeTrunc checks the time truncation granularity.
func TimeTrunc(v string) error {
	switch v {
	case "hour", "day", "month", "year":
		return nil
	}
	return &ArgumentError{Field: "time_trunc", Reason: "must be one of hour, day, month, year"}
}

// TimeAgg checks the time aggregation mode.
func TimeAgg(v string) error {
	switch v {
	case "sum", "avg":
		return nil
	}
	return &ArgumentError{Field: "time_agg", Reason: "must be sum or avg"}
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("must not be empty")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%q is not an ISO8601 timestamp or YYYY-MM-DD date", s)
}
