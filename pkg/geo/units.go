package geo

import (
	"fmt"
	"strings"
)

const (
	// EarthRadiusKm is the mean Earth radius used by every spherical computation.
	EarthRadiusKm = 6371.0

	kmToMiles         = 0.621371
	kmToNauticalMiles = 0.539957
	metersPerKm       = 1000.0
)

// Unit selects the unit a distance is expressed in.
type Unit int

const (
	Kilometers Unit = iota
	Meters
	Miles
	NauticalMiles
)

// ParseUnit accepts the unit symbol or name, case-insensitively: "km", "m", "mi", "nmi",
// "kilometers", "meters", "miles", "nautical-miles".
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return Kilometers, nil
	case "m", "meter", "meters", "metre", "metres":
		return Meters, nil
	case "mi", "mile", "miles":
		return Miles, nil
	case "nmi", "nm", "nautical-mile", "nautical-miles", "nautical_miles":
		return NauticalMiles, nil
	default:
		return Kilometers, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
	}
}

// Symbol returns the short unit suffix used in formatted output.
func (u Unit) Symbol() string {
	switch u {
	case Meters:
		return "m"
	case Miles:
		return "mi"
	case NauticalMiles:
		return "nmi"
	default:
		return "km"
	}
}

func (u Unit) String() string {
	switch u {
	case Meters:
		return "meters"
	case Miles:
		return "miles"
	case NauticalMiles:
		return "nautical miles"
	default:
		return "kilometers"
	}
}

// fromKm converts kilometers into u. Unknown units fall back to kilometers.
func (u Unit) fromKm(km float64) float64 {
	switch u {
	case Meters:
		return km * metersPerKm
	case Miles:
		return km * kmToMiles
	case NauticalMiles:
		return km * kmToNauticalMiles
	default:
		return km
	}
}
