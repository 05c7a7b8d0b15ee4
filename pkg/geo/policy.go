package geo

// Policy gathers the tunable validation settings in one struct so they can be
// loaded from the environment (see pkg/config) and turned into constructor options.
type Policy struct {
	DecimalPlaces            int     `env:"GEO_DECIMAL_PLACES" envDefault:"6"`
	MinAltitude              float64 `env:"GEO_MIN_ALTITUDE" envDefault:"-500"`
	MaxAltitude              float64 `env:"GEO_MAX_ALTITUDE" envDefault:"10000"`
	RejectZeroLengthSegments bool    `env:"GEO_REJECT_ZERO_LENGTH_SEGMENTS" envDefault:"false"`
	CheckSelfIntersection    bool    `env:"GEO_CHECK_SELF_INTERSECTION" envDefault:"false"`
	MaxVertices              int     `env:"GEO_MAX_VERTICES" envDefault:"0"`
	MaxSegments              int     `env:"GEO_MAX_SEGMENTS" envDefault:"0"`
}

// DefaultPolicy mirrors the constructors' defaults.
func DefaultPolicy() Policy {
	return Policy{
		DecimalPlaces: DefaultDecimalPlaces,
		MinAltitude:   DefaultMinAltitude,
		MaxAltitude:   DefaultMaxAltitude,
	}
}

func (p Policy) CoordinateOptions() []CoordinateOption {
	return []CoordinateOption{
		WithDecimalPlaces(p.DecimalPlaces),
		WithAltitudeRange(p.MinAltitude, p.MaxAltitude),
	}
}

func (p Policy) BoundaryOptions() []BoundaryOption {
	opts := []BoundaryOption{WithMaxVertices(p.MaxVertices)}
	if p.CheckSelfIntersection {
		opts = append(opts, WithSelfIntersectionCheck())
	}
	return opts
}

func (p Policy) SegmentOptions() []SegmentOption {
	return []SegmentOption{WithSegmentZeroLengthPolicy(p.zeroLength())}
}

func (p Policy) RouteOptions() []RouteOption {
	return []RouteOption{
		WithMaxSegments(p.MaxSegments),
		WithZeroLengthPolicy(p.zeroLength()),
	}
}

func (p Policy) zeroLength() ZeroLengthPolicy {
	if p.RejectZeroLengthSegments {
		return RejectZeroLength
	}
	return AllowZeroLength
}
