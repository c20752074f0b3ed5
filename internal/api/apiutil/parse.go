// internal/api/apiutil/parse.go
package apiutil

import (
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate validates a calendar date and returns it normalized.
func ParseDate(field, value string) (string, error) {
	if value == "" {
		return "", FieldError{Field: field, Reason: "is required"}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return "", FieldError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return t.Format(DateLayout), nil
}

// ParseHour validates an hour-of-day slot.
func ParseHour(field, value string) (int64, error) {
	if value == "" {
		return 0, FieldError{Field: field, Reason: "is required"}
	}
	h, err := strconv.ParseInt(value, 10, 64)
	if err != nil || h < 0 || h > 23 {
		return 0, FieldError{Field: field, Reason: "must be an hour between 0 and 23"}
	}
	return h, nil
}

// ParseID validates a positive integer id.
func ParseID(field, value string) (int64, error) {
	if value == "" {
		return 0, FieldError{Field: field, Reason: "is required"}
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, FieldError{Field: field, Reason: "must be a positive integer"}
	}
	return id, nil
}
