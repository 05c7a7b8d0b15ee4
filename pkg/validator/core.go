package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
// Kind classifies the failure with a sentinel error so callers can branch with errors.Is.
type ValidationError struct {
	Field             string
	Message           string
	Kind              error
	TranslationKey    string
	TranslationValues map[string]any
}

// IsKind reports whether the error kind matches target.
func (e ValidationError) IsKind(target error) bool {
	return e.Kind != nil && errors.Is(e.Kind, target)
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is matches ErrValidationFailed and the kind of any contained error.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	for _, err := range ve {
		if err.IsKind(target) {
			return true
		}
	}
	return false
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

// OfKind returns the errors whose kind matches target.
func (ve ValidationErrors) OfKind(target error) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.IsKind(target) {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// WithPrefix returns a copy where every field is nested under prefix,
// e.g. "latitude" becomes "from.latitude". Index-style fields ("[2]") are appended
// without a dot.
func (ve ValidationErrors) WithPrefix(prefix string) ValidationErrors {
	if prefix == "" || len(ve) == 0 {
		return ve
	}
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		switch {
		case err.Field == "":
			err.Field = prefix
		case strings.HasPrefix(err.Field, "["):
			err.Field = prefix + err.Field
		default:
			err.Field = prefix + "." + err.Field
		}
		out[i] = err
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithKind returns a copy of the rule reporting the given error kind.
func (r Rule) WithKind(kind error) Rule {
	r.Error.Kind = kind
	return r
}

// WithMessage returns a copy of the rule reporting msg instead of the default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply executes multiple validation rules and returns any validation errors.
// Every rule is evaluated; failures are never short-circuited.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// Merge flattens validation errors from several Apply calls into one ValidationErrors.
// Nil errors are skipped. Errors that are not validation errors are returned as-is
// joined with the collected validation errors.
func Merge(errs ...error) error {
	var (
		merged ValidationErrors
		other  []error
	)
	for _, err := range errs {
		if err == nil {
			continue
		}
		if verrs := ExtractValidationErrors(err); verrs != nil {
			merged = append(merged, verrs...)
			continue
		}
		other = append(other, err)
	}

	if len(other) > 0 {
		if !merged.IsEmpty() {
			other = append(other, merged)
		}
		return errors.Join(other...)
	}
	if merged.IsEmpty() {
		return nil
	}
	return merged
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
