package geo

import (
	"fmt"
	"math"
	"slices"

	"github.com/dmitrymomot/geokit/pkg/validator"
)

// MinVertices is the smallest number of vertices a Boundary accepts.
const MinVertices = 3

// FieldVertices is the field name used in boundary validation errors.
const FieldVertices = "vertices"

// BoundingBox is the axis-aligned latitude/longitude rectangle enclosing a set of points.
type BoundingBox struct {
	MinLat float64 `json:"min_lat" yaml:"min_lat" toml:"min_lat"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat" toml:"max_lat"`
	MinLon float64 `json:"min_lon" yaml:"min_lon" toml:"min_lon"`
	MaxLon float64 `json:"max_lon" yaml:"max_lon" toml:"max_lon"`
}

// Contains reports whether c lies inside or on the edge of the box.
func (bb BoundingBox) Contains(c Coordinate) bool {
	return c.lat >= bb.MinLat && c.lat <= bb.MaxLat &&
		c.lon >= bb.MinLon && c.lon <= bb.MaxLon
}

// Boundary is a validated polygon of at least three vertices with an implicit
// closing edge from the last vertex to the first. Perimeter, area, centroid and
// bounding box are computed once at construction.
//
// Boundaries are assumed simple. Self-intersecting polygons are accepted unless
// WithSelfIntersectionCheck is used; their derived values are then meaningless.
type Boundary struct {
	vertices    []Coordinate
	perimeterKm float64
	areaKm2     float64
	centroid    Coordinate
	bbox        BoundingBox
}

type boundaryOptions struct {
	area                  AreaFunc
	maxVertices           int
	checkSelfIntersection bool
}

// BoundaryOption configures NewBoundary.
type BoundaryOption func(*boundaryOptions)

// WithAreaFunc replaces the area computation. Nil is ignored.
func WithAreaFunc(fn AreaFunc) BoundaryOption {
	return func(o *boundaryOptions) {
		if fn != nil {
			o.area = fn
		}
	}
}

// WithMaxVertices rejects boundaries with more than n vertices. Zero means unlimited.
func WithMaxVertices(n int) BoundaryOption {
	return func(o *boundaryOptions) { o.maxVertices = n }
}

// WithSelfIntersectionCheck rejects polygons whose non-adjacent edges touch or cross.
// The check is quadratic in the number of vertices.
func WithSelfIntersectionCheck() BoundaryOption {
	return func(o *boundaryOptions) { o.checkSelfIntersection = true }
}

// NewBoundary validates vertices and returns a Boundary owning a copy of them.
func NewBoundary(vertices []Coordinate, opts ...BoundaryOption) (Boundary, error) {
	o := boundaryOptions{area: SphericalExcessArea}
	for _, opt := range opts {
		opt(&o)
	}

	err := validator.Apply(
		validator.MinLenSlice(FieldVertices, vertices, MinVertices).
			WithKind(ErrInsufficientVertices).
			WithMessage(fmt.Sprintf("must have at least %d vertices, got %d", MinVertices, len(vertices))),
		validator.MaxLenSlice(FieldVertices, vertices, o.maxVertices).
			WithKind(ErrTooManyVertices).
			WithMessage(fmt.Sprintf("must have at most %d vertices, got %d", o.maxVertices, len(vertices))),
	)
	if err != nil {
		return Boundary{}, err
	}

	if o.checkSelfIntersection {
		if err := validator.Apply(selfIntersectionRules(vertices)...); err != nil {
			return Boundary{}, err
		}
	}

	b := Boundary{vertices: slices.Clone(vertices)}
	b.perimeterKm = perimeterKm(b.vertices)
	b.areaKm2 = o.area(b.vertices)
	b.centroid = centroid(b.vertices)
	b.bbox = boundingBox(b.vertices)
	return b, nil
}

func perimeterKm(vertices []Coordinate) float64 {
	var total float64
	for i := range vertices {
		total += NewDistance(vertices[i], vertices[(i+1)%len(vertices)]).Kilometers()
	}
	return total
}

func centroid(vertices []Coordinate) Coordinate {
	var lat, lon float64
	for _, v := range vertices {
		lat += v.lat
		lon += v.lon
	}
	n := float64(len(vertices))
	return derivedCoordinate(lat/n, lon/n)
}

func boundingBox(vertices []Coordinate) BoundingBox {
	bb := BoundingBox{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for _, v := range vertices {
		bb.MinLat = math.Min(bb.MinLat, v.lat)
		bb.MaxLat = math.Max(bb.MaxLat, v.lat)
		bb.MinLon = math.Min(bb.MinLon, v.lon)
		bb.MaxLon = math.Max(bb.MaxLon, v.lon)
	}
	return bb
}

// selfIntersectionRules yields one failing rule per pair of non-adjacent edges that meet.
func selfIntersectionRules(vertices []Coordinate) []validator.Rule {
	n := len(vertices)
	var rules []validator.Rule
	for i := 0; i < n; i++ {
		a1, a2 := vertices[i], vertices[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// The first and last edges share vertex 0.
			if i == 0 && j == n-1 {
				continue
			}
			b1, b2 := vertices[j], vertices[(j+1)%n]
			if !segmentsIntersect(a1, a2, b1, b2) {
				continue
			}
			rules = append(rules, validator.Rule{
				Check: func() bool { return false },
				Error: validator.ValidationError{
					Field:          FieldVertices,
					Message:        fmt.Sprintf("edge %d %s→%s intersects edge %d %s→%s", i, a1, a2, j, b1, b2),
					Kind:           ErrSelfIntersecting,
					TranslationKey: "validation.self_intersecting",
					TranslationValues: map[string]any{
						"field": FieldVertices,
						"edge":  i,
						"other": j,
					},
				},
			})
		}
	}
	return rules
}

// Vertices returns a copy of the polygon's vertices in their original order.
func (b Boundary) Vertices() []Coordinate { return slices.Clone(b.vertices) }

// Len returns the number of vertices.
func (b Boundary) Len() int { return len(b.vertices) }

// Perimeter returns the length of all edges, closing edge included, in unit.
func (b Boundary) Perimeter(unit Unit) float64 { return unit.fromKm(b.perimeterKm) }

// Area returns the enclosed area in square kilometers.
func (b Boundary) Area() float64 { return b.areaKm2 }

// Centroid returns the arithmetic mean of the vertex latitudes and longitudes.
func (b Boundary) Centroid() Coordinate { return b.centroid }

func (b Boundary) BoundingBox() BoundingBox { return b.bbox }

// Contains reports whether p lies strictly inside the polygon using ray casting
// with longitude as x and latitude as y. Points exactly on an edge or vertex are
// outside.
func (b Boundary) Contains(p Coordinate) bool {
	if len(b.vertices) < MinVertices || !b.bbox.Contains(p) {
		return false
	}

	inside := false
	n := len(b.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := b.vertices[i], b.vertices[j]
		if onSegment(p.lon, p.lat, vj.lon, vj.lat, vi.lon, vi.lat) {
			return false
		}
		if (vi.lat > p.lat) != (vj.lat > p.lat) &&
			p.lon < (vj.lon-vi.lon)*(p.lat-vi.lat)/(vj.lat-vi.lat)+vi.lon {
			inside = !inside
		}
	}
	return inside
}

// DistanceToNearestEdge returns the shortest great-circle distance from p to any
// edge of the polygon. The result runs from p to the closest point on that edge.
// It does not check containment: a point inside still gets its distance to the
// nearest edge.
func (b Boundary) DistanceToNearestEdge(p Coordinate) Distance {
	n := len(b.vertices)
	if n == 0 {
		return NewDistance(p, p)
	}

	best := Distance{meters: math.Inf(1)}
	for i := range b.vertices {
		q := nearestOnArc(p, b.vertices[i], b.vertices[(i+1)%n])
		if d := NewDistance(p, q); d.meters < best.meters {
			best = d
		}
	}
	return best
}

// Equal reports whether both boundaries have the same vertices in the same
// order and the same area. Perimeter, centroid and bounding box follow from the
// vertices; area also depends on the AreaFunc, so boundaries over identical
// vertices built with different area methods are not equal.
func (b Boundary) Equal(other Boundary) bool {
	return slices.Equal(b.vertices, other.vertices) && b.areaKm2 == other.areaKm2
}
