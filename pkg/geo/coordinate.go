package geo

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// DefaultDecimalPlaces is the precision NewCoordinate enforces unless overridden.
	DefaultDecimalPlaces = 6

	DefaultMinAltitude = -500.0
	DefaultMaxAltitude = 10000.0
)

// Field names used in validation errors.
const (
	FieldLatitude      = "latitude"
	FieldLongitude     = "longitude"
	FieldAltitude      = "altitude"
	FieldAccuracy      = "accuracy"
	FieldDecimalPlaces = "decimal_places"
)

// Coordinate is a validated point on the Earth's surface with optional altitude
// and accuracy, both in meters. The zero value is the point (0, 0).
//
// Coordinates are comparable: a == b iff latitude, longitude, altitude and
// accuracy (including their presence) are all equal.
type Coordinate struct {
	lat    float64
	lon    float64
	alt    float64
	acc    float64
	hasAlt bool
	hasAcc bool
}

type coordinateOptions struct {
	decimalPlaces int
	altitude      *float64
	accuracy      *float64
	minAltitude   float64
	maxAltitude   float64
}

// CoordinateOption configures NewCoordinate.
type CoordinateOption func(*coordinateOptions)

// WithDecimalPlaces sets the maximum number of decimal places latitude and longitude
// may carry. Values outside [0, 8] are reported as a validation error.
func WithDecimalPlaces(n int) CoordinateOption {
	return func(o *coordinateOptions) { o.decimalPlaces = n }
}

// WithAltitude attaches an altitude in meters.
func WithAltitude(meters float64) CoordinateOption {
	return func(o *coordinateOptions) { o.altitude = &meters }
}

// WithAccuracy attaches a horizontal accuracy radius in meters.
func WithAccuracy(meters float64) CoordinateOption {
	return func(o *coordinateOptions) { o.accuracy = &meters }
}

// WithAltitudeRange overrides the accepted altitude bounds.
func WithAltitudeRange(min, max float64) CoordinateOption {
	return func(o *coordinateOptions) {
		o.minAltitude = min
		o.maxAltitude = max
	}
}

// NewCoordinate validates the inputs and returns an immutable Coordinate.
// All violated rules are reported together as validator.ValidationErrors;
// on failure the zero Coordinate is returned.
func NewCoordinate(lat, lon float64, opts ...CoordinateOption) (Coordinate, error) {
	o := coordinateOptions{
		decimalPlaces: DefaultDecimalPlaces,
		minAltitude:   DefaultMinAltitude,
		maxAltitude:   DefaultMaxAltitude,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rules := []validator.Rule{
		validator.RangeNum(FieldLatitude, lat, MinLatitude, MaxLatitude),
		validator.RangeNum(FieldLongitude, lon, MinLongitude, MaxLongitude),
		validator.ValidPrecision(FieldDecimalPlaces, o.decimalPlaces),
	}
	// Per-value precision is meaningless when the setting itself is invalid.
	if o.decimalPlaces >= 0 && o.decimalPlaces <= validator.MaxDecimalPlaces {
		rules = append(rules,
			validator.DecimalPrecision(FieldLatitude, lat, o.decimalPlaces),
			validator.DecimalPrecision(FieldLongitude, lon, o.decimalPlaces),
		)
	}
	if o.altitude != nil {
		rules = append(rules, validator.RangeNum(FieldAltitude, *o.altitude, o.minAltitude, o.maxAltitude))
	}
	if o.accuracy != nil {
		rules = append(rules, validator.NonNegative(FieldAccuracy, *o.accuracy))
	}

	if err := validator.Apply(rules...); err != nil {
		return Coordinate{}, err
	}

	c := Coordinate{lat: lat, lon: lon}
	if o.altitude != nil {
		c.alt, c.hasAlt = *o.altitude, true
	}
	if o.accuracy != nil {
		c.acc, c.hasAcc = *o.accuracy, true
	}
	return c, nil
}

// MustCoordinate is like NewCoordinate but panics on invalid input.
// Intended for constants and tests.
func MustCoordinate(lat, lon float64, opts ...CoordinateOption) Coordinate {
	c, err := NewCoordinate(lat, lon, opts...)
	if err != nil {
		panic(fmt.Sprintf("geo: invalid coordinate (%v, %v): %v", lat, lon, err))
	}
	return c
}

// derivedCoordinate builds a point computed from already valid coordinates
// (centroids, projections). The result is rounded to validator.MaxDecimalPlaces
// so that it passes NewCoordinate under the decoding options.
func derivedCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		lat: math.Max(MinLatitude, math.Min(MaxLatitude, roundToMaxPrecision(lat))),
		lon: math.Max(MinLongitude, math.Min(MaxLongitude, roundToMaxPrecision(lon))),
	}
}

var maxPrecisionScale = math.Pow10(validator.MaxDecimalPlaces)

func roundToMaxPrecision(v float64) float64 {
	r := math.Round(v*maxPrecisionScale) / maxPrecisionScale
	if r == 0 {
		// Drop negative zero.
		return 0
	}
	return r
}

func (c Coordinate) Latitude() float64  { return c.lat }
func (c Coordinate) Longitude() float64 { return c.lon }

// Altitude returns the altitude in meters and whether one was set.
func (c Coordinate) Altitude() (float64, bool) { return c.alt, c.hasAlt }

// Accuracy returns the accuracy in meters and whether one was set.
func (c Coordinate) Accuracy() (float64, bool) { return c.acc, c.hasAcc }

// Equal reports whether both coordinates hold identical values.
func (c Coordinate) Equal(other Coordinate) bool { return c == other }

// String formats the coordinate as "(lat, lon)" with six decimal places.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.lat, c.lon)
}
