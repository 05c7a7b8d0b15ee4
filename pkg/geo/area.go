package geo

import "math"

// AreaFunc computes the enclosed area of a closed ring of vertices in square
// kilometers. Implementations must return a non-negative magnitude regardless
// of winding order.
type AreaFunc func(vertices []Coordinate) float64

// SphericalExcessArea approximates the area of the ring on a sphere of radius
// EarthRadiusKm using the line-integral form
//
//	A = |Σ (λ[i+1] − λ[i−1]) · sin φ[i]| · R² / 2
//
// It is exact for latitude/longitude rectangles and accurate to well under a
// percent for continental-scale polygons. Rings crossing the antimeridian are
// not supported.
func SphericalExcessArea(vertices []Coordinate) float64 {
	n := len(vertices)
	if n < MinVertices {
		return 0
	}

	var total float64
	for i := range vertices {
		prev := vertices[(i+n-1)%n]
		next := vertices[(i+1)%n]
		total += toRadians(next.lon-prev.lon) * math.Sin(toRadians(vertices[i].lat))
	}
	return math.Abs(total * EarthRadiusKm * EarthRadiusKm / 2)
}

// PlanarArea projects the ring onto a local equirectangular plane scaled at the
// mean latitude and applies the shoelace formula. Suitable for small polygons.
func PlanarArea(vertices []Coordinate) float64 {
	n := len(vertices)
	if n < MinVertices {
		return 0
	}

	var meanLat float64
	for _, v := range vertices {
		meanLat += v.lat
	}
	meanLat /= float64(n)

	kmPerDegree := EarthRadiusKm * math.Pi / 180
	cosLat := math.Cos(toRadians(meanLat))

	var twice float64
	for i := range vertices {
		a, b := vertices[i], vertices[(i+1)%n]
		ax, ay := a.lon*cosLat*kmPerDegree, a.lat*kmPerDegree
		bx, by := b.lon*cosLat*kmPerDegree, b.lat*kmPerDegree
		twice += ax*by - bx*ay
	}
	return math.Abs(twice) / 2
}
