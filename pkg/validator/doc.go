// Package validator provides composable, generic validation rules whose failures
// are aggregated rather than short-circuited.
//
// A Rule pairs a boolean Check function with rich error metadata: the field
// path, a human message, a Kind sentinel error and translation-friendly key and
// values. Apply evaluates every rule and collects the failures into a
// ValidationErrors slice that satisfies the error interface, so a constructor can
// report all problems with its input in a single return.
//
// # Architecture
//
// Each source file groups a family of rules (`numeric_rules.go`,
// `collection_rules.go`, `precision_rules.go`). Every exported rule function
// simply constructs and returns a Rule; there is no global state, therefore the
// package is stateless and goroutine-safe.
//
// Core building blocks:
//   - Rule              – Check func plus ValidationError metadata
//   - ValidationError   – field, message, kind and translation data
//   - ValidationErrors  – slice type implementing error and errors.Is
//   - Numeric interface – generic constraint used by numeric helpers
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RangeNum("latitude", lat, -90.0, 90.0),
//	    validator.DecimalPrecision("latitude", lat, 6),
//	    validator.MinLenSlice("vertices", vertices, 3),
//	)
//	if errors.Is(err, validator.ErrOutOfRange) {
//	    for _, verr := range validator.ExtractValidationErrors(err) {
//	        fmt.Println(verr.Field, verr.Message)
//	    }
//	}
//
// Domain packages re-label generic rules with their own kinds:
//
//	validator.MinLenSlice("vertices", vertices, 3).WithKind(ErrInsufficientVertices)
//
// # Error Handling
//
// ValidationErrors implements Is: it matches ErrValidationFailed and the Kind of
// every contained error. Use WithPrefix to nest errors produced for a child value
// under its parent's field path and Merge to combine the results of several
// Apply calls.
package validator
