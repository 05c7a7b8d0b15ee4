package cli

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/geokit/pkg/i18n"
	"github.com/dmitrymomot/geokit/pkg/logger"
	"github.com/dmitrymomot/geokit/pkg/validator"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var translator *i18n.Translator

func loadTranslator(ctx context.Context) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.YAMLParser{}, localeFS, "locales"),
		i18n.WithDefaultLanguage("en"),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(verbose),
	)
}

// invalidInputError lists validation failures in the configured locale.
// The original error stays reachable through Unwrap.
type invalidInputError struct {
	subject string
	lines   []string
	err     error
}

func (e *invalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input:\n  %s", e.subject, strings.Join(e.lines, "\n  "))
}

func (e *invalidInputError) Unwrap() error { return e.err }

// reportInvalid logs a rejected input and returns the error cobra prints.
// Subject names the argument, flag or file that was rejected.
func reportInvalid(cmd *cobra.Command, subject string, err error) error {
	log.DebugContext(cmd.Context(), "input rejected", slog.String("input", subject), logger.Validation(err))

	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil || translator == nil {
		return fmt.Errorf("%s: %w", subject, err)
	}
	lang := translator.Match(settings.Locale)
	lines := make([]string, 0, len(verrs))
	for _, v := range translator.TranslateValidation(lang, verrs) {
		lines = append(lines, v.Message)
	}
	return &invalidInputError{subject: subject, lines: lines, err: err}
}
