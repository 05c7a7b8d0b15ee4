package geofile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/geokit/pkg/geo"
	"github.com/dmitrymomot/geokit/pkg/validator"
)

// Format is the encoding of a document file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is the file representation of geo values. Every section is optional;
// the values are plain data until one of the Build methods validates them.
type Document struct {
	Name        string               `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Coordinates []geo.CoordinateData `json:"coordinates,omitempty" yaml:"coordinates,omitempty" toml:"coordinates,omitempty"`
	Boundary    *geo.BoundaryData    `json:"boundary,omitempty" yaml:"boundary,omitempty" toml:"boundary,omitempty"`
	Route       *geo.RouteData       `json:"route,omitempty" yaml:"route,omitempty" toml:"route,omitempty"`
}

// Decode reads a document in the given format. Unknown fields are rejected so
// that a misspelled key does not silently drop data.
func Decode(r io.Reader, format Format) (Document, error) {
	var (
		doc Document
		err error
	)
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&doc)
	case FormatTOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&doc)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if errors.Is(err, io.EOF) {
		return Document{}, ErrEmptyDocument
	}
	if err != nil {
		return Document{}, errors.Join(ErrDecode, err)
	}
	if doc.isEmpty() {
		return Document{}, ErrEmptyDocument
	}
	return doc, nil
}

// DecodeFile opens path and decodes it in the format implied by its extension.
func DecodeFile(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, doc Document, format Format) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

func (d Document) isEmpty() bool {
	return d.Name == "" && len(d.Coordinates) == 0 && d.Boundary == nil && d.Route == nil
}

// Points validates the coordinates section. Errors are reported under
// "coordinates[i]".
func (d Document) Points(p geo.Policy) ([]geo.Coordinate, error) {
	points := make([]geo.Coordinate, 0, len(d.Coordinates))
	var errs []error
	for i, cd := range d.Coordinates {
		c, err := cd.Coordinate(p.CoordinateOptions()...)
		if err != nil {
			errs = append(errs, nest(err, fmt.Sprintf("coordinates[%d]", i)))
			continue
		}
		points = append(points, c)
	}
	if err := validator.Merge(errs...); err != nil {
		return nil, err
	}
	return points, nil
}

// BuildBoundary validates the boundary section with the options of p.
// Errors are reported under "boundary".
func (d Document) BuildBoundary(p geo.Policy) (geo.Boundary, error) {
	if d.Boundary == nil {
		return geo.Boundary{}, ErrNoBoundary
	}
	b, err := d.Boundary.Boundary(p.CoordinateOptions(), p.BoundaryOptions()...)
	if err != nil {
		return geo.Boundary{}, nest(err, "boundary")
	}
	return b, nil
}

// BuildRoute validates the route section with the options of p. A route
// without a name takes the document's name. Errors are reported under "route".
func (d Document) BuildRoute(p geo.Policy) (geo.Route, error) {
	if d.Route == nil {
		return geo.Route{}, ErrNoRoute
	}
	rd := *d.Route
	if rd.Name == "" {
		rd.Name = d.Name
	}
	r, err := rd.Route(p.CoordinateOptions(), p.SegmentOptions(), p.RouteOptions()...)
	if err != nil {
		return geo.Route{}, nest(err, "route")
	}
	return r, nil
}

func nest(err error, prefix string) error {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return verrs.WithPrefix(prefix)
	}
	return err
}
