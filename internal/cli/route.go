package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/geokit/pkg/geo"
	"github.com/dmitrymomot/geokit/pkg/geofile"
	"github.com/dmitrymomot/geokit/pkg/logger"
)

var (
	routeUnit    string
	routeSegment int
	routeXLSX    string
	routeJSON    bool
)

var routeCmd = &cobra.Command{
	Use:   "route FILE",
	Short: "Validate a multi-segment route and report its distances",
	Long: `Reads the route section of a JSON, YAML or TOML document, checks that every
segment starts where the previous one ended and prints per-segment, cumulative
and total distances.`,
	Example: `  geocalc route trip.yaml --unit mi
  geocalc route trip.toml --segment 1
  geocalc route trip.json --xlsx trip.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routeUnit, "unit", "u", "km", "output unit: km, m, mi or nmi")
	routeCmd.Flags().IntVarP(&routeSegment, "segment", "s", 0, "only report the segment at this zero-based index")
	routeCmd.Flags().StringVar(&routeXLSX, "xlsx", "", "also export the route to this XLSX file")
	routeCmd.Flags().BoolVar(&routeJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(routeCmd)
}

type segmentReport struct {
	Index      int              `json:"index"`
	Segment    geo.RouteSegment `json:"segment"`
	Distance   float64          `json:"distance"`
	Cumulative float64          `json:"cumulative"`
}

type routeOutput struct {
	Name      string           `json:"name,omitempty"`
	Unit      string           `json:"unit"`
	Total     float64          `json:"total"`
	Waypoints []geo.Coordinate `json:"waypoints"`
	Segments  []segmentReport  `json:"segments"`
}

func runRoute(cmd *cobra.Command, args []string) error {
	unit, err := geo.ParseUnit(routeUnit)
	if err != nil {
		return err
	}

	path := args[0]
	doc, err := geofile.DecodeFile(path)
	if err != nil {
		return err
	}
	r, err := doc.BuildRoute(policy)
	if err != nil {
		return reportInvalid(cmd, path, err)
	}
	log.DebugContext(cmd.Context(), "route loaded", logger.File(path), logger.Count(r.Len()))

	if routeXLSX != "" {
		if err := geofile.ExportRoute(routeXLSX, r, unit); err != nil {
			return err
		}
		log.DebugContext(cmd.Context(), "route exported", logger.File(routeXLSX))
	}

	if cmd.Flags().Changed("segment") {
		return printSegment(cmd, r, routeSegment, unit)
	}

	out := routeOutput{
		Name:      r.Name(),
		Unit:      unit.Symbol(),
		Total:     r.TotalDistance(unit),
		Waypoints: r.Waypoints(),
	}
	for i, seg := range r.Segments() {
		cumulative, _ := r.CumulativeDistance(i, unit)
		out.Segments = append(out.Segments, segmentReport{
			Index:      i,
			Segment:    seg,
			Distance:   seg.Distance().In(unit),
			Cumulative: cumulative,
		})
	}

	if routeJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal route: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if out.Name != "" {
		cmd.Printf("Route: %s\n", out.Name)
	}
	for _, s := range out.Segments {
		label := s.Segment.Name()
		if label == "" {
			label = fmt.Sprintf("segment %d", s.Index)
		}
		cmd.Printf("  [%d] %s: %s → %s  %.2f %s (total %.2f %s)\n",
			s.Index, label, s.Segment.From(), s.Segment.To(), s.Distance, out.Unit, s.Cumulative, out.Unit)
	}
	cmd.Printf("Total: %.2f %s over %d segments\n", out.Total, out.Unit, len(out.Segments))
	return nil
}

func printSegment(cmd *cobra.Command, r geo.Route, i int, unit geo.Unit) error {
	seg, ok := r.Segment(i)
	if !ok {
		return fmt.Errorf("%w: segment %d, route has %d segments", geo.ErrIndexOutOfRange, i, r.Len())
	}
	cumulative, _ := r.CumulativeDistance(i, unit)

	if routeJSON {
		data, err := json.MarshalIndent(segmentReport{
			Index:      i,
			Segment:    seg,
			Distance:   seg.Distance().In(unit),
			Cumulative: cumulative,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal segment: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(seg.Distance().Description())
	cmd.Printf("Cumulative: %.2f %s\n", cumulative, unit.Symbol())
	return nil
}
