package geo

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// FieldSegments is the field name used in route validation errors.
const FieldSegments = "segments"

// Route is a validated, contiguous sequence of segments: every segment starts
// exactly where the previous one ended. Per-segment, cumulative and total
// distances are computed once at construction.
type Route struct {
	name         string
	segments     []RouteSegment
	cumulativeKm []float64
}

type routeOptions struct {
	name        string
	maxSegments int
	zeroLength  ZeroLengthPolicy
}

// RouteOption configures NewRoute.
type RouteOption func(*routeOptions)

// WithRouteName labels the route.
func WithRouteName(name string) RouteOption {
	return func(o *routeOptions) { o.name = name }
}

// WithMaxSegments rejects routes with more than n segments. Zero means unlimited.
func WithMaxSegments(n int) RouteOption {
	return func(o *routeOptions) { o.maxSegments = n }
}

// WithZeroLengthPolicy re-checks every segment against p.
func WithZeroLengthPolicy(p ZeroLengthPolicy) RouteOption {
	return func(o *routeOptions) { o.zeroLength = p }
}

// NewRoute validates segments and returns a Route owning a copy of them.
// Every discontinuity is reported, not only the first.
func NewRoute(segments []RouteSegment, opts ...RouteOption) (Route, error) {
	var o routeOptions
	for _, opt := range opts {
		opt(&o)
	}

	rules := []validator.Rule{
		validator.RequiredSlice(FieldSegments, segments).
			WithKind(ErrEmptySegments).
			WithMessage("route must have at least one segment"),
		validator.MaxLenSlice(FieldSegments, segments, o.maxSegments).
			WithKind(ErrTooManySegments).
			WithMessage(fmt.Sprintf("must have at most %d segments, got %d", o.maxSegments, len(segments))),
	}
	for i, seg := range segments {
		rules = append(rules, zeroLengthRule(segmentField(i), seg.From(), seg.To(), o.zeroLength))
		if i > 0 {
			rules = append(rules, contiguityRule(i, segments[i-1], seg))
		}
	}
	if err := validator.Apply(rules...); err != nil {
		return Route{}, err
	}

	r := Route{
		name:         o.name,
		segments:     slices.Clone(segments),
		cumulativeKm: make([]float64, len(segments)),
	}
	var running float64
	for i, seg := range r.segments {
		running += seg.distance.Kilometers()
		r.cumulativeKm[i] = running
	}
	return r, nil
}

func segmentField(i int) string {
	return fmt.Sprintf("%s[%d]", FieldSegments, i)
}

func contiguityRule(i int, prev, next RouteSegment) validator.Rule {
	field := segmentField(i)
	return validator.Rule{
		Check: func() bool {
			return prev.To() == next.From()
		},
		Error: validator.ValidationError{
			Field: field,
			Message: fmt.Sprintf("segment %d ends at %s but segment %d starts at %s",
				i-1, prev.To(), i, next.From()),
			Kind:           ErrDiscontinuity,
			TranslationKey: "validation.route_discontinuity",
			TranslationValues: map[string]any{
				"field": field,
				"end":   prev.To().String(),
				"start": next.From().String(),
			},
		},
	}
}

func (r Route) Name() string { return r.name }

// Len returns the number of segments.
func (r Route) Len() int { return len(r.segments) }

// Segments returns a copy of the route's segments.
func (r Route) Segments() []RouteSegment { return slices.Clone(r.segments) }

// Segment returns the segment at index i.
func (r Route) Segment(i int) (RouteSegment, bool) {
	if i < 0 || i >= len(r.segments) {
		return RouteSegment{}, false
	}
	return r.segments[i], true
}

// StartingPoint returns the first segment's origin.
func (r Route) StartingPoint() Coordinate {
	if len(r.segments) == 0 {
		return Coordinate{}
	}
	return r.segments[0].From()
}

// EndingPoint returns the last segment's destination.
func (r Route) EndingPoint() Coordinate {
	if len(r.segments) == 0 {
		return Coordinate{}
	}
	return r.segments[len(r.segments)-1].To()
}

// TotalDistance returns the sum of every segment's distance in unit.
func (r Route) TotalDistance(unit Unit) float64 {
	if len(r.cumulativeKm) == 0 {
		return 0
	}
	return unit.fromKm(r.cumulativeKm[len(r.cumulativeKm)-1])
}

// Waypoints returns the start point followed by each segment's destination.
// Shared vertices appear once.
func (r Route) Waypoints() []Coordinate {
	if len(r.segments) == 0 {
		return nil
	}
	points := make([]Coordinate, 0, len(r.segments)+1)
	points = append(points, r.segments[0].From())
	for _, seg := range r.segments {
		points = append(points, seg.To())
	}
	return points
}

// SegmentDistance returns the distance of the segment at index i.
func (r Route) SegmentDistance(i int) (Distance, bool) {
	seg, ok := r.Segment(i)
	if !ok {
		return Distance{}, false
	}
	return seg.distance, true
}

// CumulativeDistance returns the running total through segment i, inclusive, in unit.
func (r Route) CumulativeDistance(i int, unit Unit) (float64, bool) {
	if i < 0 || i >= len(r.cumulativeKm) {
		return 0, false
	}
	return unit.fromKm(r.cumulativeKm[i]), true
}

// Equal reports whether both routes have the same name and segments.
func (r Route) Equal(other Route) bool {
	return r.name == other.name && slices.Equal(r.segments, other.segments)
}
