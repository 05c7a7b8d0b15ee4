package geo

import (
	"fmt"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// ZeroLengthPolicy decides whether a segment may start and end at the same coordinate.
type ZeroLengthPolicy int

const (
	// AllowZeroLength accepts segments whose endpoints are equal.
	AllowZeroLength ZeroLengthPolicy = iota
	// RejectZeroLength reports ErrZeroLengthSegment for such segments.
	RejectZeroLength
)

// RouteSegment is a directed leg between two coordinates with its distance precomputed.
type RouteSegment struct {
	name     string
	distance Distance
}

type segmentOptions struct {
	name       string
	zeroLength ZeroLengthPolicy
}

// SegmentOption configures NewRouteSegment.
type SegmentOption func(*segmentOptions)

// WithSegmentName labels the segment.
func WithSegmentName(name string) SegmentOption {
	return func(o *segmentOptions) { o.name = name }
}

// WithSegmentZeroLengthPolicy sets how a segment with equal endpoints is treated.
func WithSegmentZeroLengthPolicy(p ZeroLengthPolicy) SegmentOption {
	return func(o *segmentOptions) { o.zeroLength = p }
}

// NewRouteSegment builds a segment from `from` to `to`. It only fails when the
// zero-length policy rejects equal endpoints.
func NewRouteSegment(from, to Coordinate, opts ...SegmentOption) (RouteSegment, error) {
	var o segmentOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := validator.Apply(zeroLengthRule("to", from, to, o.zeroLength)); err != nil {
		return RouteSegment{}, err
	}
	return RouteSegment{name: o.name, distance: NewDistance(from, to)}, nil
}

func zeroLengthRule(field string, from, to Coordinate, policy ZeroLengthPolicy) validator.Rule {
	return validator.Rule{
		Check: func() bool {
			return policy != RejectZeroLength || from != to
		},
		Error: validator.ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("segment starts and ends at %s", from),
			Kind:           ErrZeroLengthSegment,
			TranslationKey: "validation.zero_length_segment",
			TranslationValues: map[string]any{
				"field": field,
				"point": from.String(),
			},
		},
	}
}

func (s RouteSegment) Name() string       { return s.name }
func (s RouteSegment) From() Coordinate   { return s.distance.from }
func (s RouteSegment) To() Coordinate     { return s.distance.to }
func (s RouteSegment) Distance() Distance { return s.distance }

// IsZeroLength reports whether the segment starts and ends at the same coordinate.
func (s RouteSegment) IsZeroLength() bool { return s.distance.from == s.distance.to }

func (s RouteSegment) String() string {
	if s.name != "" {
		return fmt.Sprintf("%s: %s → %s (%s)", s.name, s.From(), s.To(), s.distance)
	}
	return fmt.Sprintf("%s → %s (%s)", s.From(), s.To(), s.distance)
}
