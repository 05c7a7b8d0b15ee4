// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it in a LogHandlerDecorator, which runs every registered
// ContextExtractor on each record. The default is text at info level on
// stderr so that command output on stdout stays machine-readable.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithService("geocalc", version),
//	    logger.WithVerbose(verbose),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//
//	route, err := doc.Route(policy)
//	if err != nil {
//	    log.DebugContext(ctx, "route rejected", logger.Validation(err))
//	    return err
//	}
//	log.DebugContext(ctx, "route loaded", logger.File(path), logger.Count(route.Len()))
//
// # Options
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//     ParseFormat and ParseLevel validate values read from configuration.
//   - WithLevel sets the minimum level; WithVerbose switches to debug with source locations.
//   - WithAttr and WithService attach static attributes.
//   - WithContextExtractors / WithContextValue add attributes from context.
//
// # Error Attributes
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally. Validation expands a validator.ValidationErrors into a group
// keyed by field path.
package logger
