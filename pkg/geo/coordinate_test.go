package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geokit/pkg/geo"
	"github.com/dmitrymomot/geokit/pkg/validator"
)

func TestNewCoordinate(t *testing.T) {
	t.Parallel()

	t.Run("accepts latitude bounds", func(t *testing.T) {
		for _, lat := range []float64{-90, 0, 90} {
			c, err := geo.NewCoordinate(lat, 0)
			require.NoError(t, err, "latitude %v", lat)
			assert.Equal(t, lat, c.Latitude())
		}
	})

	t.Run("accepts longitude bounds", func(t *testing.T) {
		for _, lon := range []float64{-180, 0, 180} {
			c, err := geo.NewCoordinate(0, lon)
			require.NoError(t, err, "longitude %v", lon)
			assert.Equal(t, lon, c.Longitude())
		}
	})

	t.Run("rejects latitude out of range", func(t *testing.T) {
		for _, lat := range []float64{90.0001, -90.5, 180, math.NaN(), math.Inf(1)} {
			c, err := geo.NewCoordinate(lat, 0)
			require.Error(t, err, "latitude %v", lat)
			assert.ErrorIs(t, err, geo.ErrOutOfRange)
			assert.True(t, validator.ExtractValidationErrors(err).Has(geo.FieldLatitude))
			assert.Equal(t, geo.Coordinate{}, c)
		}
	})

	t.Run("rejects longitude out of range", func(t *testing.T) {
		for _, lon := range []float64{180.000001, -180.5, 360} {
			_, err := geo.NewCoordinate(0, lon)
			require.Error(t, err, "longitude %v", lon)
			assert.ErrorIs(t, err, geo.ErrOutOfRange)
			assert.True(t, validator.ExtractValidationErrors(err).Has(geo.FieldLongitude))
		}
	})

	t.Run("rejects excess precision", func(t *testing.T) {
		_, err := geo.NewCoordinate(40.7127761, -74.006)
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrPrecisionMismatch)
		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{geo.FieldLatitude}, verrs.Fields())
	})

	t.Run("custom decimal places", func(t *testing.T) {
		_, err := geo.NewCoordinate(40.71, -74.01, geo.WithDecimalPlaces(2))
		require.NoError(t, err)

		_, err = geo.NewCoordinate(40.712, -74.01, geo.WithDecimalPlaces(2))
		assert.ErrorIs(t, err, geo.ErrPrecisionMismatch)

		_, err = geo.NewCoordinate(40.12345678, -74.12345678, geo.WithDecimalPlaces(8))
		assert.NoError(t, err)
	})

	t.Run("rejects invalid decimal places setting", func(t *testing.T) {
		for _, n := range []int{-1, 9} {
			_, err := geo.NewCoordinate(40.7128, -74.006, geo.WithDecimalPlaces(n))
			require.Error(t, err)
			verrs := validator.ExtractValidationErrors(err)
			assert.Equal(t, []string{geo.FieldDecimalPlaces}, verrs.Fields())
			assert.ErrorIs(t, err, geo.ErrPrecisionMismatch)
		}
	})

	t.Run("altitude and accuracy", func(t *testing.T) {
		c, err := geo.NewCoordinate(27.9881, 86.925, geo.WithAltitude(8848.86), geo.WithAccuracy(5))
		require.NoError(t, err)

		alt, ok := c.Altitude()
		assert.True(t, ok)
		assert.Equal(t, 8848.86, alt)

		acc, ok := c.Accuracy()
		assert.True(t, ok)
		assert.Equal(t, 5.0, acc)
	})

	t.Run("absent altitude and accuracy", func(t *testing.T) {
		c := geo.MustCoordinate(1, 2)
		_, ok := c.Altitude()
		assert.False(t, ok)
		_, ok = c.Accuracy()
		assert.False(t, ok)
	})

	t.Run("rejects altitude and accuracy out of range", func(t *testing.T) {
		_, err := geo.NewCoordinate(0, 0, geo.WithAltitude(10000.5), geo.WithAccuracy(-1))
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)
		assert.ElementsMatch(t, []string{geo.FieldAltitude, geo.FieldAccuracy}, verrs.Fields())

		_, err = geo.NewCoordinate(0, 0, geo.WithAltitude(-501))
		assert.ErrorIs(t, err, geo.ErrOutOfRange)
	})

	t.Run("custom altitude range", func(t *testing.T) {
		_, err := geo.NewCoordinate(0, 0, geo.WithAltitude(12000), geo.WithAltitudeRange(-11000, 15000))
		assert.NoError(t, err)
	})

	t.Run("reports every violation together", func(t *testing.T) {
		_, err := geo.NewCoordinate(95.1234567, -200, geo.WithAltitude(20000), geo.WithAccuracy(-3))
		require.Error(t, err)
		verrs := validator.ExtractValidationErrors(err)

		assert.Len(t, verrs, 5)
		assert.Len(t, verrs.GetErrors(geo.FieldLatitude), 2, "range and precision")
		assert.True(t, verrs.Has(geo.FieldLongitude))
		assert.True(t, verrs.Has(geo.FieldAltitude))
		assert.True(t, verrs.Has(geo.FieldAccuracy))
	})
}

func TestCoordinate_Equality(t *testing.T) {
	t.Parallel()

	a := geo.MustCoordinate(40.7128, -74.006)
	b := geo.MustCoordinate(40.7128, -74.006)
	assert.True(t, a.Equal(b))
	assert.True(t, a == b)

	withAlt := geo.MustCoordinate(40.7128, -74.006, geo.WithAltitude(10))
	assert.False(t, a.Equal(withAlt))

	withZeroAlt := geo.MustCoordinate(40.7128, -74.006, geo.WithAltitude(0))
	assert.False(t, a.Equal(withZeroAlt), "a present zero altitude differs from an absent one")

	withAcc := geo.MustCoordinate(40.7128, -74.006, geo.WithAccuracy(3))
	assert.False(t, a.Equal(withAcc))
}

func TestCoordinate_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(40.712800, -74.006000)", geo.MustCoordinate(40.7128, -74.006).String())
}

func TestMustCoordinate_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { geo.MustCoordinate(91, 0) })
}
