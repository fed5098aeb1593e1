package response

import (
	"errors"
	"net/http"

	"github.com/rona-hr/rona-backend-go/internal/domain/auth"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/domain/user"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/rona-hr/rona-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var dateErr *ethiopian.DateInputError
	if errors.As(err, &dateErr) {
		BadRequest(w, "Invalid date", map[string]string{dateErr.Field: err.Error()})
		return
	}

	var timeErr *ethiopian.TimeInputError
	if errors.As(err, &timeErr) {
		BadRequest(w, "Invalid time", map[string]string{timeErr.Field: err.Error()})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")

	// User domain errors
	case errors.Is(err, user.ErrCompanyIDRequired):
		Forbidden(w, "Company membership required")

	// Calendar domain errors. Bare converter sentinels carry no field;
	// the typed forms are handled above.
	case errors.Is(err, ethiopian.ErrInvalidDateInput):
		BadRequest(w, "Invalid date", nil)
	case errors.Is(err, ethiopian.ErrInvalidTimeInput):
		BadRequest(w, "Invalid time", nil)
	case errors.Is(err, calendar.ErrUnsupportedLanguage):
		BadRequest(w, "Unsupported language", nil)
	case errors.Is(err, calendar.ErrInvalidYearMode):
		BadRequest(w, "Invalid year mode", nil)
	case errors.Is(err, calendar.ErrInvalidTimezone):
		BadRequest(w, "Invalid timezone", nil)
	case errors.Is(err, calendar.ErrCompanyIDRequired):
		Forbidden(w, "Company membership required")
	case errors.Is(err, calendar.ErrPreferenceNotFound):
		NotFound(w, "Calendar preference not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
