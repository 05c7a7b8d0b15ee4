package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxDecimalPlaces is the largest precision DecimalPrecision accepts.
const MaxDecimalPlaces = 8

// DecimalPlaces returns the number of fractional digits in the shortest decimal
// representation of v. Non-finite values report zero.
func DecimalPlaces(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// ValidPrecision validates that a decimal-places setting lies in [0, MaxDecimalPlaces].
func ValidPrecision(field string, places int) Rule {
	return Rule{
		Check: func() bool {
			return places >= 0 && places <= MaxDecimalPlaces
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between 0 and %d", MaxDecimalPlaces),
			Kind:           ErrPrecision,
			TranslationKey: "validation.precision_range",
			TranslationValues: map[string]any{
				"field": field,
				"max":   MaxDecimalPlaces,
				"value": places,
			},
		},
	}
}

// DecimalPrecision validates that value has at most maxDecimals fractional digits.
// The shortest round-trip representation is inspected, so 40.7128 has four places
// even though its binary form is inexact.
func DecimalPrecision(field string, value float64, maxDecimals int) Rule {
	return Rule{
		Check: func() bool {
			return DecimalPlaces(value) <= maxDecimals
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("cannot have more than %d decimal places", maxDecimals),
			Kind:           ErrPrecision,
			TranslationKey: "validation.decimal_precision",
			TranslationValues: map[string]any{
				"field":        field,
				"max_decimals": maxDecimals,
			},
		},
	}
}
