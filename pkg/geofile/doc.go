// Package geofile moves geo values in and out of files.
//
// Documents are JSON, YAML or TOML files holding plain data (geo.CoordinateData,
// geo.BoundaryData, geo.RouteData). Decoding is strict about unknown keys but
// performs no geographic validation; that happens when a section is built with
// a geo.Policy:
//
//	doc, err := geofile.DecodeFile("trip.yaml")
//	if err != nil {
//		return err
//	}
//	route, err := doc.BuildRoute(policy)
//	if err != nil {
//		// validator.ValidationErrors with fields like "route.segments[1].from.latitude"
//		return err
//	}
//	return geofile.ExportRoute("trip.xlsx", route, geo.Kilometers)
//
// ExportRoute and ExportBoundary write XLSX workbooks through the excelize
// stream writer.
package geofile
