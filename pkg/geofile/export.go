package geofile

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/geokit/pkg/geo"
)

const (
	RouteSheet    = "Route"
	VerticesSheet = "Vertices"
	SummarySheet  = "Summary"

	defaultSheet = "Sheet1"
)

// ExportRoute writes one row per segment with its endpoints, distance and
// running total in unit, followed by a total row.
func ExportRoute(path string, route geo.Route, unit geo.Unit) error {
	f := excelize.NewFile()
	defer f.Close()

	rows := make([][]any, 0, route.Len()+2)
	rows = append(rows, []any{
		"#", "Name",
		"From Latitude", "From Longitude", "To Latitude", "To Longitude",
		"Distance (" + unit.Symbol() + ")", "Cumulative (" + unit.Symbol() + ")",
	})
	for i, seg := range route.Segments() {
		cumulative, _ := route.CumulativeDistance(i, unit)
		rows = append(rows, []any{
			i + 1, seg.Name(),
			seg.From().Latitude(), seg.From().Longitude(),
			seg.To().Latitude(), seg.To().Longitude(),
			seg.Distance().In(unit), cumulative,
		})
	}
	rows = append(rows, []any{"Total", route.Name(), nil, nil, nil, nil, route.TotalDistance(unit), nil})

	index, err := writeSheet(f, RouteSheet, rows)
	if err != nil {
		return err
	}
	return save(f, index, path)
}

// ExportBoundary writes the vertices to one sheet and the derived measurements
// (perimeter, area, centroid, bounding box) to another.
func ExportBoundary(path string, boundary geo.Boundary) error {
	f := excelize.NewFile()
	defer f.Close()

	vertices := [][]any{{"#", "Latitude", "Longitude"}}
	for i, v := range boundary.Vertices() {
		vertices = append(vertices, []any{i + 1, v.Latitude(), v.Longitude()})
	}
	index, err := writeSheet(f, VerticesSheet, vertices)
	if err != nil {
		return err
	}

	centroid := boundary.Centroid()
	bbox := boundary.BoundingBox()
	summary := [][]any{
		{"Metric", "Value"},
		{"Vertices", boundary.Len()},
		{"Perimeter (km)", boundary.Perimeter(geo.Kilometers)},
		{"Area (km²)", boundary.Area()},
		{"Centroid Latitude", centroid.Latitude()},
		{"Centroid Longitude", centroid.Longitude()},
		{"Min Latitude", bbox.MinLat},
		{"Max Latitude", bbox.MaxLat},
		{"Min Longitude", bbox.MinLon},
		{"Max Longitude", bbox.MaxLon},
	}
	if _, err := writeSheet(f, SummarySheet, summary); err != nil {
		return err
	}
	return save(f, index, path)
}

// writeSheet streams rows into a new sheet starting at A1.
func writeSheet(f *excelize.File, name string, rows [][]any) (int, error) {
	index, err := f.NewSheet(name)
	if err != nil {
		return 0, errors.Join(ErrExport, err)
	}

	sw, err := f.NewStreamWriter(name)
	if err != nil {
		return 0, errors.Join(ErrExport, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return 0, errors.Join(ErrExport, err)
		}
		if err := sw.SetRow(cell, row); err != nil {
			return 0, errors.Join(ErrExport, fmt.Errorf("sheet %s row %d: %w", name, i+1, err))
		}
	}
	if err := sw.Flush(); err != nil {
		return 0, errors.Join(ErrExport, err)
	}
	return index, nil
}

func save(f *excelize.File, active int, path string) error {
	f.SetActiveSheet(active)
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return errors.Join(ErrExport, err)
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Join(ErrExport, err)
	}
	return nil
}
