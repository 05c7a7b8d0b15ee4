// Package geo provides validated geospatial value types: coordinates,
// great-circle distances, polygon boundaries and contiguous multi-segment routes.
//
// Every type is created through a validating constructor that reports all
// violated rules at once as validator.ValidationErrors and returns either a
// fully valid value or the zero value. Values are immutable afterwards: fields
// are unexported, slices are copied in and out, and derived quantities are
// computed once at construction. Constructed values may therefore be shared
// between goroutines freely.
//
// # Architecture
//
//   - Coordinate   – latitude/longitude with optional altitude and accuracy
//   - Distance     – Haversine distance over a coordinate pair, stored in meters
//   - Boundary     – polygon with cached perimeter, area, centroid, bounding box;
//     ray-casting containment and nearest-edge distance
//   - RouteSegment – directed leg with its distance precomputed
//   - Route        – contiguous segments with cumulative distances and waypoints
//
// Distances use a spherical Earth of radius 6371 km and ignore altitude.
// Containment treats longitude/latitude as planar x/y; points on an edge or
// vertex are outside. Boundary area is delegated to an AreaFunc, by default
// SphericalExcessArea. Polygons crossing the antimeridian are not supported.
//
// # Usage
//
//	nyc, err := geo.NewCoordinate(40.7128, -74.0060)
//	if err != nil {
//	    return err
//	}
//	la := geo.MustCoordinate(34.0522, -118.2437)
//
//	d := geo.NewDistance(nyc, la)
//	fmt.Println(d.Format(geo.Miles, 1))
//
//	route, err := geo.RouteBuilder{}.
//	    AddLeg(nyc, chicago, geo.WithSegmentName("east")).
//	    AddLeg(chicago, la, geo.WithSegmentName("west")).
//	    Build(geo.WithRouteName("cross-country"))
//
// # Error Handling
//
// Failures carry a kind usable with errors.Is:
//
//	if errors.Is(err, geo.ErrDiscontinuity) {
//	    for _, e := range validator.ExtractValidationErrors(err).OfKind(geo.ErrDiscontinuity) {
//	        log.Println(e.Field, e.Message)
//	    }
//	}
//
// Index lookups on a Route (Segment, SegmentDistance, CumulativeDistance)
// return ok=false for out-of-range indices instead of an error.
//
// # Serialization
//
// CoordinateData, SegmentData, RouteData, BoundaryData and DistanceData are the
// plain, tag-annotated forms of the value types. All value types implement
// json.Marshaler and json.Unmarshaler through them; decoding re-validates.
package geo
