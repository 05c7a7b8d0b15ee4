package validator

import "errors"

// Common validation errors used as ValidationError kinds across the application.
var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidLength is returned when a collection has an invalid number of items.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidValue is returned when a field has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrPrecision is returned when a number carries more decimal places than allowed.
	ErrPrecision = errors.New("precision exceeds allowed decimal places")
)
