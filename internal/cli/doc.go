// Package cli implements the geocalc command line: distance, boundary, route
// and version commands built on cobra. Settings come from GEOCALC_* variables
// and the validation policy from GEO_* variables, optionally loaded from the
// file given with --env-file.
//
// Rejected input is reported one message per line in the language matched
// from GEOCALC_LOCALE, using the catalogs embedded from locales/.
package cli
