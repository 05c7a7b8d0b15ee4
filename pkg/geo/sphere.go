package geo

import "math"

// vec3 is a point on the unit sphere in Earth-centred Cartesian coordinates.
type vec3 struct{ x, y, z float64 }

const vecEpsilon = 1e-12

func toVec(c Coordinate) vec3 {
	φ, λ := toRadians(c.lat), toRadians(c.lon)
	return vec3{
		x: math.Cos(φ) * math.Cos(λ),
		y: math.Cos(φ) * math.Sin(λ),
		z: math.Sin(φ),
	}
}

func (a vec3) dot(b vec3) float64 { return a.x*b.x + a.y*b.y + a.z*b.z }

func (a vec3) cross(b vec3) vec3 {
	return vec3{
		x: a.y*b.z - a.z*b.y,
		y: a.z*b.x - a.x*b.z,
		z: a.x*b.y - a.y*b.x,
	}
}

func (a vec3) sub(b vec3) vec3        { return vec3{a.x - b.x, a.y - b.y, a.z - b.z} }
func (a vec3) scale(k float64) vec3   { return vec3{a.x * k, a.y * k, a.z * k} }
func (a vec3) norm() float64          { return math.Sqrt(a.dot(a)) }
func (a vec3) normalize() vec3        { return a.scale(1 / a.norm()) }
func (a vec3) coordinate() Coordinate { return derivedCoordinate(a.latLon()) }

func (a vec3) latLon() (lat, lon float64) {
	return toDegrees(math.Asin(math.Max(-1, math.Min(1, a.z)))), toDegrees(math.Atan2(a.y, a.x))
}

// nearestOnArc returns the point of the minor great-circle arc a→b closest to p.
// p is projected onto the arc's great circle; when the projection falls outside
// the arc the nearer endpoint wins.
func nearestOnArc(p, a, b Coordinate) Coordinate {
	closerEndpoint := func() Coordinate {
		if haversineKm(p.lat, p.lon, a.lat, a.lon) <= haversineKm(p.lat, p.lon, b.lat, b.lon) {
			return a
		}
		return b
	}

	va, vb, vp := toVec(a), toVec(b), toVec(p)
	n := va.cross(vb)
	// Coincident or antipodal endpoints span no unique great circle.
	if n.norm() < vecEpsilon {
		return closerEndpoint()
	}
	n = n.normalize()

	c := vp.sub(n.scale(vp.dot(n)))
	// p is a pole of the great circle: every point of it is equidistant.
	if c.norm() < vecEpsilon {
		return closerEndpoint()
	}
	c = c.normalize()

	if va.cross(c).dot(n) >= 0 && c.cross(vb).dot(n) >= 0 {
		return c.coordinate()
	}
	return closerEndpoint()
}
