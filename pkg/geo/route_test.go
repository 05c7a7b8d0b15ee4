package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geokit/pkg/geo"
	"github.com/dmitrymomot/geokit/pkg/validator"
)

func mustSegment(t *testing.T, from, to geo.Coordinate, opts ...geo.SegmentOption) geo.RouteSegment {
	t.Helper()
	seg, err := geo.NewRouteSegment(from, to, opts...)
	require.NoError(t, err)
	return seg
}

func TestNewRouteSegment(t *testing.T) {
	t.Parallel()

	t.Run("precomputes the distance", func(t *testing.T) {
		seg := mustSegment(t, newYork, chicago, geo.WithSegmentName("east"))
		assert.Equal(t, "east", seg.Name())
		assert.Equal(t, newYork, seg.From())
		assert.Equal(t, chicago, seg.To())
		assert.InDelta(t, 1144.291, seg.Distance().Kilometers(), 0.01)
		assert.False(t, seg.IsZeroLength())
		assert.Contains(t, seg.String(), "east: ")
	})

	t.Run("allows zero length by default", func(t *testing.T) {
		seg := mustSegment(t, newYork, newYork)
		assert.True(t, seg.IsZeroLength())
		assert.Zero(t, seg.Distance().Meters())
	})

	t.Run("rejects zero length when asked", func(t *testing.T) {
		_, err := geo.NewRouteSegment(newYork, newYork, geo.WithSegmentZeroLengthPolicy(geo.RejectZeroLength))
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrZeroLengthSegment)
		assert.True(t, validator.ExtractValidationErrors(err).Has("to"))
	})
}

func TestNewRoute(t *testing.T) {
	t.Parallel()

	t.Run("rejects an empty route", func(t *testing.T) {
		for _, segments := range [][]geo.RouteSegment{nil, {}} {
			_, err := geo.NewRoute(segments)
			require.Error(t, err)
			assert.ErrorIs(t, err, geo.ErrEmptySegments)
		}
	})

	t.Run("single segment", func(t *testing.T) {
		r, err := geo.NewRoute([]geo.RouteSegment{mustSegment(t, newYork, losAngeles)})
		require.NoError(t, err)
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, []geo.Coordinate{newYork, losAngeles}, r.Waypoints())
		assert.InDelta(t, 3935.746, r.TotalDistance(geo.Kilometers), 0.01)
	})

	t.Run("reports every discontinuity", func(t *testing.T) {
		segments := []geo.RouteSegment{
			mustSegment(t, newYork, chicago),
			mustSegment(t, losAngeles, newYork),
			mustSegment(t, chicago, losAngeles),
		}
		_, err := geo.NewRoute(segments)
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrDiscontinuity)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"segments[1]", "segments[2]"}, verrs.Fields())
		assert.Equal(t, []string{
			"segment 0 ends at (41.878100, -87.629800) but segment 1 starts at (34.052200, -118.243700)",
		}, verrs.Get("segments[1]"))
	})

	t.Run("altitude takes part in contiguity", func(t *testing.T) {
		high := geo.MustCoordinate(41.8781, -87.6298, geo.WithAltitude(180))
		_, err := geo.NewRoute([]geo.RouteSegment{
			mustSegment(t, newYork, chicago),
			mustSegment(t, high, losAngeles),
		})
		assert.ErrorIs(t, err, geo.ErrDiscontinuity)
	})

	t.Run("max segments", func(t *testing.T) {
		segments := []geo.RouteSegment{
			mustSegment(t, newYork, chicago),
			mustSegment(t, chicago, losAngeles),
		}
		_, err := geo.NewRoute(segments, geo.WithMaxSegments(1))
		assert.ErrorIs(t, err, geo.ErrTooManySegments)
	})

	t.Run("zero length policy on the route", func(t *testing.T) {
		segments := []geo.RouteSegment{
			mustSegment(t, newYork, chicago),
			mustSegment(t, chicago, chicago),
		}
		_, err := geo.NewRoute(segments)
		require.NoError(t, err)

		_, err = geo.NewRoute(segments, geo.WithZeroLengthPolicy(geo.RejectZeroLength))
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrZeroLengthSegment)
		assert.Equal(t, []string{"segments[1]"}, validator.ExtractValidationErrors(err).Fields())
	})

	t.Run("owns a copy of its segments", func(t *testing.T) {
		segments := []geo.RouteSegment{mustSegment(t, newYork, chicago)}
		r, err := geo.NewRoute(segments)
		require.NoError(t, err)

		segments[0] = mustSegment(t, losAngeles, chicago)
		assert.Equal(t, newYork, r.StartingPoint())

		out := r.Segments()
		out[0] = segments[0]
		assert.Equal(t, newYork, r.StartingPoint())
	})
}

func TestRoute_Distances(t *testing.T) {
	t.Parallel()

	legs := []geo.RouteSegment{
		mustSegment(t, newYork, chicago),
		mustSegment(t, chicago, losAngeles),
	}
	r, err := geo.NewRoute(legs, geo.WithRouteName("coast to coast"))
	require.NoError(t, err)

	assert.Equal(t, "coast to coast", r.Name())
	assert.Equal(t, newYork, r.StartingPoint())
	assert.Equal(t, losAngeles, r.EndingPoint())
	assert.Equal(t, []geo.Coordinate{newYork, chicago, losAngeles}, r.Waypoints())

	first, ok := r.CumulativeDistance(0, geo.Kilometers)
	require.True(t, ok)
	assert.InDelta(t, 1144.291, first, 0.01)

	second, ok := r.CumulativeDistance(1, geo.Kilometers)
	require.True(t, ok)
	assert.InDelta(t, 1144.291+2803.972, second, 0.02)
	assert.Equal(t, r.TotalDistance(geo.Kilometers), second)

	var sum float64
	for i := range r.Len() {
		d, ok := r.SegmentDistance(i)
		require.True(t, ok)
		sum += d.Kilometers()
	}
	assert.InDelta(t, sum, r.TotalDistance(geo.Kilometers), 1e-9)
	assert.InDelta(t, r.TotalDistance(geo.Kilometers)*0.621371, r.TotalDistance(geo.Miles), 1e-9)

	assert.Greater(t, r.TotalDistance(geo.Kilometers), geo.NewDistance(newYork, losAngeles).Kilometers(),
		"a detour is never shorter than the direct path")

	t.Run("out of range indexes", func(t *testing.T) {
		for _, i := range []int{-1, 2, 100} {
			_, ok := r.Segment(i)
			assert.False(t, ok)
			_, ok = r.SegmentDistance(i)
			assert.False(t, ok)
			_, ok = r.CumulativeDistance(i, geo.Kilometers)
			assert.False(t, ok)
		}
	})

	t.Run("repeatable", func(t *testing.T) {
		again, err := geo.NewRoute(legs, geo.WithRouteName("coast to coast"))
		require.NoError(t, err)
		assert.True(t, r.Equal(again))

		renamed, err := geo.NewRoute(legs)
		require.NoError(t, err)
		assert.False(t, r.Equal(renamed))
	})
}
