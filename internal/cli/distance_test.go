package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geokit/pkg/geo"
)

const (
	nyArg = "40.7128,-74.006"
	laArg = "34.0522,-118.2437"
)

func TestDistanceCmd(t *testing.T) {
	t.Run("kilometers by default", func(t *testing.T) {
		out, _, err := execute(t, "distance", nyArg, laArg)
		require.NoError(t, err)
		assert.Equal(t, "3,935.75 km\n", out)
	})

	t.Run("unit and decimals", func(t *testing.T) {
		out, _, err := execute(t, "distance", nyArg, laArg, "--unit", "mi", "--decimals", "1")
		require.NoError(t, err)
		assert.Equal(t, "2,445.6 mi\n", out)
	})

	t.Run("locale flag", func(t *testing.T) {
		out, _, err := execute(t, "distance", nyArg, laArg, "--locale", "de")
		require.NoError(t, err)
		assert.Equal(t, "3.935,75 km\n", out)
	})

	t.Run("within radius", func(t *testing.T) {
		out, _, err := execute(t, "distance", nyArg, laArg, "--within", "4000")
		require.NoError(t, err)
		assert.Contains(t, out, "Within 4000 km: yes")

		out, _, err = execute(t, "distance", nyArg, laArg, "--within", "3000")
		require.NoError(t, err)
		assert.Contains(t, out, "Within 3000 km: no")
	})

	t.Run("json output", func(t *testing.T) {
		out, _, err := execute(t, "distance", nyArg, laArg, "--json", "--within", "4000")
		require.NoError(t, err)

		var got struct {
			Distance geo.DistanceData `json:"distance"`
			Value    float64          `json:"value"`
			Unit     string           `json:"unit"`
			Within   *bool            `json:"within"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.InDelta(t, 3935.746, got.Value, 0.01)
		assert.Equal(t, "km", got.Unit)
		assert.Equal(t, 40.7128, got.Distance.From.Latitude)
		require.NotNil(t, got.Within)
		assert.True(t, *got.Within)
	})

	t.Run("altitude is accepted and ignored", func(t *testing.T) {
		out, _, err := execute(t, "distance", nyArg+",120", laArg)
		require.NoError(t, err)
		assert.Equal(t, "3,935.75 km\n", out)
	})
}

func TestDistanceCmd_Errors(t *testing.T) {
	t.Run("latitude out of range", func(t *testing.T) {
		_, _, err := execute(t, "distance", "91,0", laArg)
		assert.ErrorIs(t, err, geo.ErrOutOfRange)
	})

	t.Run("malformed coordinate", func(t *testing.T) {
		_, _, err := execute(t, "distance", "north", laArg)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, _, err = execute(t, "distance", "1,x", laArg)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, _, err := execute(t, "distance", nyArg, laArg, "--unit", "furlong")
		assert.ErrorIs(t, err, geo.ErrUnknownUnit)
	})

	t.Run("bad locale", func(t *testing.T) {
		_, _, err := execute(t, "distance", nyArg, laArg, "--locale", "not a locale")
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("policy from env file", func(t *testing.T) {
		envPath := writeTemp(t, "strict.env", "GEO_DECIMAL_PLACES=2\n")
		_, stderr, err := execute(t, "distance", nyArg, laArg, "--env-file", envPath, "-v")
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrPrecisionMismatch)
		assert.Contains(t, stderr, `msg="input rejected" input=origin`)
		assert.Contains(t, stderr, "command=distance")
	})

	t.Run("messages follow the configured locale", func(t *testing.T) {
		_, _, err := execute(t, "distance", "91,0", laArg)
		require.Error(t, err)
		assert.Equal(t, "origin: invalid input:\n  latitude must be between -90 and 90, got 91", err.Error())

		envPath := writeTemp(t, "de.env", "GEOCALC_LOCALE=de-AT\n")
		_, _, err = execute(t, "distance", "91,0", laArg, "--env-file", envPath)
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrOutOfRange)
		assert.Equal(t, "origin: invalid input:\n  latitude muss zwischen -90 und 90 liegen, erhalten: 91", err.Error())
	})

	t.Run("unsupported locale falls back to english", func(t *testing.T) {
		envPath := writeTemp(t, "ja.env", "GEOCALC_LOCALE=ja\n")
		_, _, err := execute(t, "distance", "0,181", laArg, "--env-file", envPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "longitude must be between -180 and 180, got 181")
	})
}
