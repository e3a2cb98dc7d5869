package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Employee id: 1-50 chars, A-Z, a-z, 0-9, ., _, -
var employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{1,50}$`)

func IsValidEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Accepted layouts for request date-times, most specific first.
var dateTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseDateTime parses "YYYY-MM-DD HH:MM", "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" in loc.
func ParseDateTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidYearMonth checks a calendar month in a sane range.
func IsValidYearMonth(year, month int) bool {
	return year >= 1970 && year <= 9999 && month >= 1 && month <= 12
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
