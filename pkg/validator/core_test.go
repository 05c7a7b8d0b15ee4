package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

var errCustomKind = errors.New("custom kind")

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "latitude",
			Message: "must be between -90 and 90",
		})
		assert.Equal(t, "validation failed: latitude: must be between -90 and 90", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "latitude", Message: "out of range"})
		errs.Add(validator.ValidationError{Field: "longitude", Message: "too precise"})

		msg := errs.Error()
		assert.Contains(t, msg, "validation failed:")
		assert.Contains(t, msg, "latitude: out of range")
		assert.Contains(t, msg, "longitude: too precise")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "latitude", Message: "out of range", Kind: validator.ErrOutOfRange})
	errs.Add(validator.ValidationError{Field: "latitude", Message: "too precise", Kind: validator.ErrPrecision})
	errs.Add(validator.ValidationError{Field: "accuracy", Message: "cannot be negative", Kind: validator.ErrOutOfRange})

	t.Run("has", func(t *testing.T) {
		assert.True(t, errs.Has("latitude"))
		assert.False(t, errs.Has("longitude"))
	})

	t.Run("get", func(t *testing.T) {
		assert.Equal(t, []string{"out of range", "too precise"}, errs.Get("latitude"))
		assert.Empty(t, errs.Get("longitude"))
	})

	t.Run("get errors", func(t *testing.T) {
		got := errs.GetErrors("accuracy")
		require.Len(t, got, 1)
		assert.Equal(t, "cannot be negative", got[0].Message)
	})

	t.Run("fields are unique and ordered", func(t *testing.T) {
		assert.Equal(t, []string{"latitude", "accuracy"}, errs.Fields())
	})

	t.Run("of kind", func(t *testing.T) {
		assert.Len(t, errs.OfKind(validator.ErrOutOfRange), 2)
		assert.Len(t, errs.OfKind(validator.ErrPrecision), 1)
		assert.Empty(t, errs.OfKind(validator.ErrInvalidLength))
	})
}

func TestValidationErrors_Is(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "segments[1]", Message: "gap", Kind: errCustomKind})

	assert.ErrorIs(t, errs, validator.ErrValidationFailed)
	assert.ErrorIs(t, errs, errCustomKind)
	assert.NotErrorIs(t, errs, validator.ErrOutOfRange)

	t.Run("through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("decode route: %w", errs)
		assert.ErrorIs(t, wrapped, errCustomKind)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("wrapped kinds match their parents", func(t *testing.T) {
		child := fmt.Errorf("%w: latitude", validator.ErrOutOfRange)
		var e validator.ValidationErrors
		e.Add(validator.ValidationError{Field: "latitude", Kind: child})
		assert.ErrorIs(t, e, validator.ErrOutOfRange)
	})
}

func TestValidationErrors_WithPrefix(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "latitude", Message: "a"})
	errs.Add(validator.ValidationError{Field: "[2]", Message: "b"})
	errs.Add(validator.ValidationError{Field: "", Message: "c"})

	prefixed := errs.WithPrefix("from")
	assert.Equal(t, []string{"from.latitude", "from[2]", "from"}, prefixed.Fields())
	assert.Equal(t, "latitude", errs[0].Field, "original must not be modified")

	assert.Equal(t, errs, errs.WithPrefix(""))
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "a"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "b"}},
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "a", Message: "x"}},
			validator.Rule{Check: func() bool { return true }, Error: validator.ValidationError{Field: "b", Message: "y"}},
			validator.Rule{Check: func() bool { return false }, Error: validator.ValidationError{Field: "c", Message: "z"}},
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"a", "c"}, verrs.Fields())
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestRule_WithKindAndMessage(t *testing.T) {
	base := validator.MinLenSlice("vertices", []int{1, 2}, 3)
	relabeled := base.WithKind(errCustomKind).WithMessage("need a triangle")

	assert.Equal(t, validator.ErrInvalidLength, base.Error.Kind)
	assert.Equal(t, "must have at least 3 items", base.Error.Message)
	assert.Equal(t, errCustomKind, relabeled.Error.Kind)
	assert.Equal(t, "need a triangle", relabeled.Error.Message)

	err := validator.Apply(relabeled)
	assert.ErrorIs(t, err, errCustomKind)
}

func TestMerge(t *testing.T) {
	t.Run("nil when nothing failed", func(t *testing.T) {
		assert.NoError(t, validator.Merge(nil, nil))
	})

	t.Run("flattens validation errors", func(t *testing.T) {
		first := validator.Apply(validator.NonNegative("accuracy", -1.0))
		second := validator.Apply(validator.RangeNum("latitude", 91.0, -90, 90))

		merged := validator.ExtractValidationErrors(validator.Merge(first, nil, second))
		require.Len(t, merged, 2)
		assert.Equal(t, []string{"accuracy", "latitude"}, merged.Fields())
	})

	t.Run("keeps foreign errors", func(t *testing.T) {
		boom := errors.New("boom")
		first := validator.Apply(validator.NonNegative("accuracy", -1.0))

		err := validator.Merge(boom, first)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, validator.ErrOutOfRange)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("returns nil for non-ValidationErrors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
