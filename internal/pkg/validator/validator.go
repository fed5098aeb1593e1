package validator

import (
	"regexp"
	"strconv"
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

// DateParts is a calendar date split into fields without range checks,
// so callers can report out-of-range days themselves.
type DateParts struct {
	Year  int
	Month int
	Day   int
}

var dateShapeRegex = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDateParts splits a "YYYY-MM-DD" string. Only the shape is checked.
func ParseDateParts(dateStr string) (DateParts, bool) {
	m := dateShapeRegex.FindStringSubmatch(dateStr)
	if m == nil {
		return DateParts{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return DateParts{Year: y, Month: mo, Day: d}, true
}

// ClockParts is a wall-clock time split into fields.
type ClockParts struct {
	Hour   int
	Minute int
	Second int
}

var clockShapeRegex = regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?$`)

// ParseClockParts splits "HH:MM" or "HH:MM:SS". The hour must be 00-23;
// minutes and seconds are only shape-checked.
func ParseClockParts(clockStr string) (ClockParts, bool) {
	m := clockShapeRegex.FindStringSubmatch(clockStr)
	if m == nil {
		return ClockParts{}, false
	}
	h, _ := strconv.Atoi(m[1])
	if h > 23 {
		return ClockParts{}, false
	}
	mi, _ := strconv.Atoi(m[2])
	var s int
	if m[3] != "" {
		s, _ = strconv.Atoi(m[3])
	}
	return ClockParts{Hour: h, Minute: mi, Second: s}, true
}

// IsValidTimezone reports whether name is a loadable IANA zone.
func IsValidTimezone(name string) bool {
	if IsEmpty(name) {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
