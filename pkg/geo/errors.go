package geo

import (
	"errors"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// Validation error kinds. Every constructor failure is a validator.ValidationErrors
// whose entries carry one of these as Kind, so errors.Is works on the aggregate.
var (
	// ErrOutOfRange is reported for latitude, longitude, altitude or accuracy outside its legal domain.
	ErrOutOfRange = validator.ErrOutOfRange

	// ErrPrecisionMismatch is reported when a value carries more decimal places than allowed
	// or the decimal-places setting itself is outside [0, 8].
	ErrPrecisionMismatch = validator.ErrPrecision

	// ErrInsufficientVertices is reported for a boundary with fewer than three vertices.
	ErrInsufficientVertices = errors.New("boundary requires at least 3 vertices")

	// ErrTooManyVertices is reported when a boundary exceeds the configured vertex limit.
	ErrTooManyVertices = errors.New("boundary exceeds vertex limit")

	// ErrSelfIntersecting is reported when self-intersection checking is enabled and two
	// non-adjacent edges cross.
	ErrSelfIntersecting = errors.New("boundary edges intersect")

	// ErrEmptySegments is reported for a route without segments.
	ErrEmptySegments = errors.New("route requires at least one segment")

	// ErrTooManySegments is reported when a route exceeds the configured segment limit.
	ErrTooManySegments = errors.New("route exceeds segment limit")

	// ErrDiscontinuity is reported when a segment does not start where the previous one ended.
	ErrDiscontinuity = errors.New("route segments are not contiguous")

	// ErrZeroLengthSegment is reported for a segment whose endpoints are equal
	// when the zero-length policy rejects them.
	ErrZeroLengthSegment = errors.New("segment has zero length")

	// ErrIndexOutOfRange marks a segment index outside a route. Route lookups return
	// ok=false instead of this error; callers surfacing the misuse wrap it.
	ErrIndexOutOfRange = errors.New("segment index out of range")

	// ErrUnknownUnit is returned by ParseUnit for unrecognised unit names.
	ErrUnknownUnit = errors.New("unknown distance unit")
)
