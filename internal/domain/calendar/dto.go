package calendar

import (
	"strings"
	"time"

	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/rona-hr/rona-backend-go/internal/pkg/validator"
)

type ConvertRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Language string `json:"lang,omitempty"`
	YearMode string `json:"year_mode,omitempty"`
	Timezone string `json:"timezone,omitempty"`

	// Parsed by Validate
	DateParts validator.DateParts  `json:"-"`
	TimeParts validator.ClockParts `json:"-"`
}

func (r *ConvertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if parts, ok := validator.ParseDateParts(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.DateParts = parts
	}

	if !validator.IsEmpty(r.Time) {
		parts, ok := validator.ParseClockParts(r.Time)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "time",
				Message: "time must be in HH:MM or HH:MM:SS format",
			})
		} else {
			r.TimeParts = parts
		}
	}

	if r.Timezone != "" && !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone name",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePreferenceRequest struct {
	Language *string `json:"lang,omitempty"`
	YearMode *string `json:"year_mode,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

func (r *UpdatePreferenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Language == nil && r.YearMode == nil && r.Timezone == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of lang, year_mode, timezone is required",
		})
	}
	if r.Language != nil && !Language(strings.ToLower(*r.Language)).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "lang",
			Message: "lang must be one of: en, am",
		})
	}
	if r.YearMode != nil {
		if _, err := ethiopian.ParseYearMode(*r.YearMode); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "year_mode",
				Message: "year_mode must be one of: uniform, cutover",
			})
		}
	}
	if r.Timezone != nil && !validator.IsValidTimezone(*r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone name",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EthiopianResponse struct {
	Year         int    `json:"year"`
	MonthIndex   int    `json:"month_index"`
	MonthName    string `json:"month_name"`
	Day          int    `json:"day"`
	WeekdayIndex int    `json:"weekday_index"`
	WeekdayName  string `json:"weekday_name"`
	Hour         int    `json:"hour"`
	DisplayHour  int    `json:"display_hour"`
	Minute       int    `json:"minute"`
	Second       int    `json:"second"`
	Period       string `json:"period"`
}

type ClockResponse struct {
	Language  Language           `json:"lang"`
	Date      string             `json:"date"`
	Time      string             `json:"time"`
	Timestamp time.Time          `json:"timestamp"`
	Timezone  string             `json:"timezone"`
	YearMode  ethiopian.YearMode `json:"year_mode,omitempty"`
	Ethiopian *EthiopianResponse `json:"ethiopian,omitempty"`
}

// NewClockResponse flattens a rendered frame for the API.
func NewClockResponse(c Clock, mode ethiopian.YearMode) ClockResponse {
	resp := ClockResponse{
		Language:  c.Language,
		Date:      c.Date,
		Time:      c.Time,
		Timestamp: c.Instant,
		Timezone:  c.Instant.Location().String(),
	}
	if c.Ethiopian != nil && c.TimeOfDay != nil {
		resp.YearMode = mode
		resp.Ethiopian = &EthiopianResponse{
			Year:         c.Ethiopian.Year,
			MonthIndex:   c.Ethiopian.Month,
			MonthName:    c.Ethiopian.MonthName(),
			Day:          c.Ethiopian.Day,
			WeekdayIndex: int(c.Ethiopian.Weekday),
			WeekdayName:  c.Ethiopian.WeekdayName(),
			Hour:         c.TimeOfDay.Hour,
			DisplayHour:  c.TimeOfDay.DisplayHour,
			Minute:       c.TimeOfDay.Minute,
			Second:       c.TimeOfDay.Second,
			Period:       c.TimeOfDay.Period.Label(),
		}
	}
	return resp
}

type PreferenceResponse struct {
	CompanyID string             `json:"company_id"`
	Language  Language           `json:"lang"`
	YearMode  ethiopian.YearMode `json:"year_mode"`
	Timezone  string             `json:"timezone"`
	IsDefault bool               `json:"is_default"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

type StreamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
