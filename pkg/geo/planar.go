package geo

import "math"

// Planar predicates over (longitude, latitude) treated as Cartesian (x, y).
// They back ray casting and self-intersection detection.

const planarEpsilon = 1e-12

func orientation(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// onSegment reports whether (px, py) lies on the closed segment a-b.
func onSegment(px, py, ax, ay, bx, by float64) bool {
	if math.Abs(orientation(ax, ay, bx, by, px, py)) > planarEpsilon {
		return false
	}
	return px >= math.Min(ax, bx)-planarEpsilon && px <= math.Max(ax, bx)+planarEpsilon &&
		py >= math.Min(ay, by)-planarEpsilon && py <= math.Max(ay, by)+planarEpsilon
}

func sign(v float64) int {
	switch {
	case v > planarEpsilon:
		return 1
	case v < -planarEpsilon:
		return -1
	default:
		return 0
	}
}

// segmentsIntersect reports whether segments p1-p2 and q1-q2 share at least one point,
// touching and collinear overlap included.
func segmentsIntersect(p1, p2, q1, q2 Coordinate) bool {
	d1 := sign(orientation(q1.lon, q1.lat, q2.lon, q2.lat, p1.lon, p1.lat))
	d2 := sign(orientation(q1.lon, q1.lat, q2.lon, q2.lat, p2.lon, p2.lat))
	d3 := sign(orientation(p1.lon, p1.lat, p2.lon, p2.lat, q1.lon, q1.lat))
	d4 := sign(orientation(p1.lon, p1.lat, p2.lon, p2.lat, q2.lon, q2.lat))

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	switch {
	case d1 == 0 && onSegment(p1.lon, p1.lat, q1.lon, q1.lat, q2.lon, q2.lat):
		return true
	case d2 == 0 && onSegment(p2.lon, p2.lat, q1.lon, q1.lat, q2.lon, q2.lat):
		return true
	case d3 == 0 && onSegment(q1.lon, q1.lat, p1.lon, p1.lat, p2.lon, p2.lat):
		return true
	case d4 == 0 && onSegment(q2.lon, q2.lat, p1.lon, p1.lat, p2.lon, p2.lat):
		return true
	}
	return false
}
