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
	boundaryContains []string
	boundaryXLSX     string
	boundaryJSON     bool
)

var boundaryCmd = &cobra.Command{
	Use:   "boundary FILE",
	Short: "Measure a polygon and test points against it",
	Long: `Reads the boundary section of a JSON, YAML or TOML document and prints its
perimeter, area, centroid and bounding box. Points passed with --contains are
tested for containment; points on an edge or vertex count as outside.`,
	Example: `  geocalc boundary park.yaml --contains 0.5,0.5 --contains 2,2`,
	Args:    cobra.ExactArgs(1),
	RunE:    runBoundary,
}

func init() {
	boundaryCmd.Flags().StringArrayVarP(&boundaryContains, "contains", "c", nil, "test LAT,LON for containment (repeatable)")
	boundaryCmd.Flags().StringVar(&boundaryXLSX, "xlsx", "", "also export the boundary to this XLSX file")
	boundaryCmd.Flags().BoolVar(&boundaryJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(boundaryCmd)
}

type pointReport struct {
	Point       geo.Coordinate `json:"point"`
	Inside      bool           `json:"inside"`
	NearestEdge float64        `json:"nearest_edge_km"`
}

type boundaryOutput struct {
	Boundary    geo.Boundary    `json:"boundary"`
	PerimeterKm float64         `json:"perimeter_km"`
	AreaKm2     float64         `json:"area_km2"`
	Centroid    geo.Coordinate  `json:"centroid"`
	BoundingBox geo.BoundingBox `json:"bounding_box"`
	Points      []pointReport   `json:"points,omitempty"`
}

func runBoundary(cmd *cobra.Command, args []string) error {
	path := args[0]
	doc, err := geofile.DecodeFile(path)
	if err != nil {
		return err
	}
	b, err := doc.BuildBoundary(policy)
	if err != nil {
		return reportInvalid(cmd, path, err)
	}
	log.DebugContext(cmd.Context(), "boundary loaded", logger.File(path), logger.Count(b.Len()))

	out := boundaryOutput{
		Boundary:    b,
		PerimeterKm: b.Perimeter(geo.Kilometers),
		AreaKm2:     b.Area(),
		Centroid:    b.Centroid(),
		BoundingBox: b.BoundingBox(),
	}
	for i, raw := range boundaryContains {
		p, err := parseCoordinate(raw)
		if err != nil {
			return reportInvalid(cmd, fmt.Sprintf("--contains[%d]", i), err)
		}
		out.Points = append(out.Points, pointReport{
			Point:       p,
			Inside:      b.Contains(p),
			NearestEdge: b.DistanceToNearestEdge(p).Kilometers(),
		})
	}

	if boundaryXLSX != "" {
		if err := geofile.ExportBoundary(boundaryXLSX, b); err != nil {
			return err
		}
		log.DebugContext(cmd.Context(), "boundary exported", logger.File(boundaryXLSX))
	}

	if boundaryJSON {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal boundary: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if doc.Name != "" {
		cmd.Printf("Boundary: %s\n", doc.Name)
	}
	cmd.Printf("Vertices:  %d\n", b.Len())
	cmd.Printf("Perimeter: %.2f km\n", out.PerimeterKm)
	cmd.Printf("Area:      %.2f km²\n", out.AreaKm2)
	cmd.Printf("Centroid:  %s\n", out.Centroid)
	cmd.Printf("Bounds:    lat [%g, %g] lon [%g, %g]\n",
		out.BoundingBox.MinLat, out.BoundingBox.MaxLat, out.BoundingBox.MinLon, out.BoundingBox.MaxLon)
	for _, p := range out.Points {
		where := "outside"
		if p.Inside {
			where = "inside"
		}
		cmd.Printf("  %s: %s, nearest edge %.2f km\n", p.Point, where, p.NearestEdge)
	}
	return nil
}
