package ethiopian

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateInput = errors.New("invalid date input")
	ErrInvalidTimeInput = errors.New("invalid time input")
)

// DateInputError reports which part of a Gregorian date was rejected.
type DateInputError struct {
	Field string
	Value int
}

func (e *DateInputError) Error() string {
	return fmt.Sprintf("%s: %s %d out of range", ErrInvalidDateInput, e.Field, e.Value)
}

func (e *DateInputError) Unwrap() error {
	return ErrInvalidDateInput
}

// TimeInputError reports which part of a wall-clock time was rejected.
type TimeInputError struct {
	Field string
	Value int
}

func (e *TimeInputError) Error() string {
	return fmt.Sprintf("%s: %s %d out of range", ErrInvalidTimeInput, e.Field, e.Value)
}

func (e *TimeInputError) Unwrap() error {
	return ErrInvalidTimeInput
}
