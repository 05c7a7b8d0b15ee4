package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/geokit/pkg/geo"
)

// parseCoordinate reads "LAT,LON" or "LAT,LON,ALT" and validates it against the
// loaded policy.
func parseCoordinate(s string) (geo.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return geo.Coordinate{}, fmt.Errorf("%w: %q: want LAT,LON[,ALT]", ErrInvalidArgument, s)
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geo.Coordinate{}, fmt.Errorf("%w: %q: %q is not a number", ErrInvalidArgument, s, p)
		}
		values[i] = v
	}

	b := geo.CoordinateBuilder{Latitude: values[0], Longitude: values[1]}
	if len(values) == 3 {
		b.Altitude = &values[2]
	}
	return b.Build(policy.CoordinateOptions()...)
}
