package geofile

import "errors"

var (
	ErrUnknownFormat = errors.New("geofile: unknown document format")
	ErrDecode        = errors.New("geofile: failed to decode document")
	ErrEncode        = errors.New("geofile: failed to encode document")
	ErrEmptyDocument = errors.New("geofile: empty document")
	ErrNoBoundary    = errors.New("geofile: document has no boundary")
	ErrNoRoute       = errors.New("geofile: document has no route")
	ErrExport        = errors.New("geofile: failed to export workbook")
)
