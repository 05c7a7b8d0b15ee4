package geo

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// Plain-data representations of the value types. They carry every field of the
// corresponding value and convert back only through the validating constructors.

// CoordinateData is the plain form of a Coordinate.
type CoordinateData struct {
	Latitude  float64  `json:"latitude" yaml:"latitude" toml:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude" toml:"longitude"`
	Altitude  *float64 `json:"altitude,omitempty" yaml:"altitude,omitempty" toml:"altitude,omitempty"`
	Accuracy  *float64 `json:"accuracy,omitempty" yaml:"accuracy,omitempty" toml:"accuracy,omitempty"`
}

// SegmentData is the plain form of a RouteSegment. DistanceKm is informational
// and ignored when converting back.
type SegmentData struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	From       CoordinateData `json:"from" yaml:"from" toml:"from"`
	To         CoordinateData `json:"to" yaml:"to" toml:"to"`
	DistanceKm float64        `json:"distance_km,omitempty" yaml:"distance_km,omitempty" toml:"distance_km,omitempty"`
}

// RouteData is the plain form of a Route.
type RouteData struct {
	Name     string        `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Segments []SegmentData `json:"segments" yaml:"segments" toml:"segments"`
}

// BoundaryData is the plain form of a Boundary. Derived values are recomputed.
type BoundaryData struct {
	Vertices []CoordinateData `json:"vertices" yaml:"vertices" toml:"vertices"`
}

// DistanceData is the plain form of a Distance. Meters is informational and
// recomputed from the endpoints when converting back.
type DistanceData struct {
	From   CoordinateData `json:"from" yaml:"from" toml:"from"`
	To     CoordinateData `json:"to" yaml:"to" toml:"to"`
	Meters float64        `json:"meters" yaml:"meters" toml:"meters"`
}

// Data returns the plain form of c.
func (c Coordinate) Data() CoordinateData {
	d := CoordinateData{Latitude: c.lat, Longitude: c.lon}
	if c.hasAlt {
		alt := c.alt
		d.Altitude = &alt
	}
	if c.hasAcc {
		acc := c.acc
		d.Accuracy = &acc
	}
	return d
}

// Coordinate validates d. Options are applied after d's altitude and accuracy.
func (d CoordinateData) Coordinate(opts ...CoordinateOption) (Coordinate, error) {
	return CoordinateBuilder{
		Latitude:  d.Latitude,
		Longitude: d.Longitude,
		Altitude:  d.Altitude,
		Accuracy:  d.Accuracy,
	}.Build(opts...)
}

func (s RouteSegment) Data() SegmentData {
	return SegmentData{
		Name:       s.name,
		From:       s.From().Data(),
		To:         s.To().Data(),
		DistanceKm: s.distance.Kilometers(),
	}
}

// Segment validates both endpoints and builds the segment. Endpoint errors are
// reported under "from" and "to".
func (d SegmentData) Segment(coordOpts []CoordinateOption, segOpts ...SegmentOption) (RouteSegment, error) {
	from, fromErr := d.From.Coordinate(coordOpts...)
	to, toErr := d.To.Coordinate(coordOpts...)
	if err := validator.Merge(prefixed(fromErr, "from"), prefixed(toErr, "to")); err != nil {
		return RouteSegment{}, err
	}
	return NewRouteSegment(from, to, append([]SegmentOption{WithSegmentName(d.Name)}, segOpts...)...)
}

func (r Route) Data() RouteData {
	d := RouteData{Name: r.name, Segments: make([]SegmentData, len(r.segments))}
	for i, seg := range r.segments {
		d.Segments[i] = seg.Data()
	}
	return d
}

// Route validates every segment and then the route as a whole. Segment errors
// are reported under "segments[i]"; route-level checks run only when all
// segments are valid.
func (d RouteData) Route(coordOpts []CoordinateOption, segOpts []SegmentOption, routeOpts ...RouteOption) (Route, error) {
	segments := make([]RouteSegment, 0, len(d.Segments))
	var errs []error
	for i, sd := range d.Segments {
		seg, err := sd.Segment(coordOpts, segOpts...)
		if err != nil {
			errs = append(errs, prefixed(err, segmentField(i)))
			continue
		}
		segments = append(segments, seg)
	}
	if err := validator.Merge(errs...); err != nil {
		return Route{}, err
	}
	return NewRoute(segments, append([]RouteOption{WithRouteName(d.Name)}, routeOpts...)...)
}

func (b Boundary) Data() BoundaryData {
	d := BoundaryData{Vertices: make([]CoordinateData, len(b.vertices))}
	for i, v := range b.vertices {
		d.Vertices[i] = v.Data()
	}
	return d
}

// Boundary validates every vertex and then the polygon. Vertex errors are
// reported under "vertices[i]".
func (d BoundaryData) Boundary(coordOpts []CoordinateOption, opts ...BoundaryOption) (Boundary, error) {
	vertices := make([]Coordinate, 0, len(d.Vertices))
	var errs []error
	for i, vd := range d.Vertices {
		v, err := vd.Coordinate(coordOpts...)
		if err != nil {
			errs = append(errs, prefixed(err, fmt.Sprintf("%s[%d]", FieldVertices, i)))
			continue
		}
		vertices = append(vertices, v)
	}
	if err := validator.Merge(errs...); err != nil {
		return Boundary{}, err
	}
	return NewBoundary(vertices, opts...)
}

func (d Distance) Data() DistanceData {
	return DistanceData{From: d.from.Data(), To: d.to.Data(), Meters: d.meters}
}

// Distance validates both endpoints and recomputes the distance.
func (d DistanceData) Distance(coordOpts ...CoordinateOption) (Distance, error) {
	from, fromErr := d.From.Coordinate(coordOpts...)
	to, toErr := d.To.Coordinate(coordOpts...)
	if err := validator.Merge(prefixed(fromErr, "from"), prefixed(toErr, "to")); err != nil {
		return Distance{}, err
	}
	return NewDistance(from, to), nil
}

func prefixed(err error, prefix string) error {
	if err == nil {
		return nil
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return verrs.WithPrefix(prefix)
	}
	return err
}

// Decoding accepts the full precision and any altitude a coordinate may carry,
// so that every value produced by this package survives a round trip whatever
// options it was built with.
var decodeOptions = []CoordinateOption{
	WithDecimalPlaces(validator.MaxDecimalPlaces),
	WithAltitudeRange(-math.MaxFloat64, math.MaxFloat64),
}

func (c Coordinate) MarshalJSON() ([]byte, error) { return json.Marshal(c.Data()) }

func (c *Coordinate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var d CoordinateData
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	v, err := d.Coordinate(decodeOptions...)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (d Distance) MarshalJSON() ([]byte, error) { return json.Marshal(d.Data()) }

func (d *Distance) UnmarshalJSON(b []byte) error {
	var data DistanceData
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	v, err := data.Distance(decodeOptions...)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (s RouteSegment) MarshalJSON() ([]byte, error) { return json.Marshal(s.Data()) }

func (s *RouteSegment) UnmarshalJSON(b []byte) error {
	var data SegmentData
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	v, err := data.Segment(decodeOptions)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (r Route) MarshalJSON() ([]byte, error) { return json.Marshal(r.Data()) }

func (r *Route) UnmarshalJSON(b []byte) error {
	var data RouteData
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}
	v, err := data.Route(decodeOptions, nil)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (b Boundary) MarshalJSON() ([]byte, error) { return json.Marshal(b.Data()) }

func (b *Boundary) UnmarshalJSON(data []byte) error {
	var bd BoundaryData
	if err := json.Unmarshal(data, &bd); err != nil {
		return err
	}
	v, err := bd.Boundary(decodeOptions)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
