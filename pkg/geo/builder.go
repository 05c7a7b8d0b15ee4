package geo

import (
	"slices"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// CoordinateBuilder collects coordinate fields as plain values. Build funnels them
// through NewCoordinate; a builder is a value and is never reset or shared.
type CoordinateBuilder struct {
	Latitude      float64
	Longitude     float64
	DecimalPlaces *int
	Altitude      *float64
	Accuracy      *float64
}

// Build validates the collected fields. Extra options are applied after the
// builder's own fields.
func (b CoordinateBuilder) Build(opts ...CoordinateOption) (Coordinate, error) {
	var own []CoordinateOption
	if b.DecimalPlaces != nil {
		own = append(own, WithDecimalPlaces(*b.DecimalPlaces))
	}
	if b.Altitude != nil {
		own = append(own, WithAltitude(*b.Altitude))
	}
	if b.Accuracy != nil {
		own = append(own, WithAccuracy(*b.Accuracy))
	}
	return NewCoordinate(b.Latitude, b.Longitude, append(own, opts...)...)
}

// BoundaryBuilder accumulates vertices. Add returns a new builder so earlier
// builders are never affected.
type BoundaryBuilder struct {
	vertices []Coordinate
}

// Add returns a builder with c appended.
func (b BoundaryBuilder) Add(c ...Coordinate) BoundaryBuilder {
	return BoundaryBuilder{vertices: append(slices.Clip(b.vertices), c...)}
}

// Len returns the number of collected vertices.
func (b BoundaryBuilder) Len() int { return len(b.vertices) }

// Build validates the collected vertices.
func (b BoundaryBuilder) Build(opts ...BoundaryOption) (Boundary, error) {
	return NewBoundary(b.vertices, opts...)
}

// RouteBuilder accumulates segments. Add and AddLeg return a new builder; a leg
// that fails segment validation is kept as an error and reported by Build.
type RouteBuilder struct {
	segments []RouteSegment
	errs     validator.ValidationErrors
}

// Add returns a builder with seg appended.
func (b RouteBuilder) Add(seg RouteSegment) RouteBuilder {
	return RouteBuilder{
		segments: append(slices.Clip(b.segments), seg),
		errs:     b.errs,
	}
}

// AddLeg builds a segment from `from` to `to` and appends it.
func (b RouteBuilder) AddLeg(from, to Coordinate, opts ...SegmentOption) RouteBuilder {
	seg, err := NewRouteSegment(from, to, opts...)
	if err != nil {
		prefix := segmentField(len(b.segments))
		return RouteBuilder{
			segments: slices.Clip(b.segments),
			errs:     append(slices.Clip(b.errs), validator.ExtractValidationErrors(err).WithPrefix(prefix)...),
		}
	}
	return b.Add(seg)
}

// Len returns the number of collected segments.
func (b RouteBuilder) Len() int { return len(b.segments) }

// Build validates the collected segments. Errors from rejected legs are reported
// together with route-level errors.
func (b RouteBuilder) Build(opts ...RouteOption) (Route, error) {
	r, err := NewRoute(b.segments, opts...)
	if len(b.errs) > 0 {
		return Route{}, validator.Merge(b.errs, err)
	}
	return r, err
}
