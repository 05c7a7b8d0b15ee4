package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/geokit/pkg/geo"
)

var (
	distanceUnit     string
	distanceDecimals int
	distanceWithin   float64
	distanceLocale   string
	distanceJSON     bool
)

var distanceCmd = &cobra.Command{
	Use:   "distance LAT,LON LAT,LON",
	Short: "Great-circle distance between two coordinates",
	Long: `Computes the Haversine distance between two coordinates on a sphere of
radius 6371 km. Altitude, when given as a third value, is validated but ignored.`,
	Example: `  geocalc distance 40.7128,-74.006 34.0522,-118.2437
  geocalc distance 40.7128,-74.006 34.0522,-118.2437 --unit mi --within 2500`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().StringVarP(&distanceUnit, "unit", "u", "km", "output unit: km, m, mi or nmi")
	distanceCmd.Flags().IntVarP(&distanceDecimals, "decimals", "d", 2, "decimal places in the output")
	distanceCmd.Flags().Float64Var(&distanceWithin, "within", 0, "also report whether the distance is within this many kilometers")
	distanceCmd.Flags().StringVar(&distanceLocale, "locale", "", "format numbers for this locale, e.g. de or en-GB (default from GEOCALC_LOCALE)")
	distanceCmd.Flags().BoolVar(&distanceJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(distanceCmd)
}

type distanceOutput struct {
	Distance  geo.Distance `json:"distance"`
	Value     float64      `json:"value"`
	Unit      string       `json:"unit"`
	Formatted string       `json:"formatted"`
	Within    *bool        `json:"within,omitempty"`
}

func runDistance(cmd *cobra.Command, args []string) error {
	unit, err := geo.ParseUnit(distanceUnit)
	if err != nil {
		return err
	}

	from, err := parseCoordinate(args[0])
	if err != nil {
		return reportInvalid(cmd, "origin", err)
	}
	to, err := parseCoordinate(args[1])
	if err != nil {
		return reportInvalid(cmd, "destination", err)
	}

	locale := distanceLocale
	if locale == "" {
		locale = settings.Locale
	}
	tag, err := parseLocale(locale)
	if err != nil {
		return err
	}

	d := geo.NewDistance(from, to)
	out := distanceOutput{
		Distance:  d,
		Value:     d.In(unit),
		Unit:      unit.Symbol(),
		Formatted: d.FormatLocalized(tag, unit, distanceDecimals),
	}
	if cmd.Flags().Changed("within") {
		within := d.IsWithinRadius(distanceWithin)
		out.Within = &within
	}
	log.DebugContext(cmd.Context(), "distance computed", "meters", d.Meters())

	if distanceJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal distance: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(out.Formatted)
	if out.Within != nil {
		answer := "no"
		if *out.Within {
			answer = "yes"
		}
		cmd.Printf("Within %g km: %s\n", distanceWithin, answer)
	}
	return nil
}
