package calendar

import "errors"

var (
	ErrPreferenceNotFound  = errors.New("calendar preference not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidYearMode     = errors.New("invalid year mode")
	ErrInvalidTimezone     = errors.New("invalid timezone")
	ErrCompanyIDRequired   = errors.New("company ID is required")
)
