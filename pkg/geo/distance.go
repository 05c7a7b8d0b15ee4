package geo

import "math"

// Distance is the great-circle distance between two coordinates. The value is
// computed once by NewDistance and stored in meters; altitude is ignored.
type Distance struct {
	from   Coordinate
	to     Coordinate
	meters float64
}

// NewDistance computes the Haversine distance between from and to.
// Every Coordinate value is valid, so construction cannot fail.
func NewDistance(from, to Coordinate) Distance {
	return Distance{
		from:   from,
		to:     to,
		meters: haversineKm(from.lat, from.lon, to.lat, to.lon) * metersPerKm,
	}
}

// haversineKm returns the great-circle distance in kilometers between two points in degrees.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	φ1 := toRadians(lat1)
	φ2 := toRadians(lat2)
	Δφ := toRadians(lat2 - lat1)
	Δλ := toRadians(lon2 - lon1)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) +
		math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

func (d Distance) From() Coordinate { return d.from }
func (d Distance) To() Coordinate   { return d.to }

func (d Distance) Meters() float64        { return d.meters }
func (d Distance) Kilometers() float64    { return d.meters / metersPerKm }
func (d Distance) Miles() float64         { return Miles.fromKm(d.Kilometers()) }
func (d Distance) NauticalMiles() float64 { return NauticalMiles.fromKm(d.Kilometers()) }

// In returns the distance expressed in unit.
func (d Distance) In(unit Unit) float64 {
	if unit == Meters {
		return d.meters
	}
	return unit.fromKm(d.Kilometers())
}

// IsWithinRadius reports whether the distance is at most thresholdKm kilometers.
func (d Distance) IsWithinRadius(thresholdKm float64) bool {
	return d.Kilometers() <= thresholdKm
}

// IsZero reports whether both endpoints are the same point on the sphere.
func (d Distance) IsZero() bool { return d.meters == 0 }
