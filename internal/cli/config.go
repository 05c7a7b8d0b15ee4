package cli

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/geokit/pkg/logger"
)

// Config holds the CLI settings read from the environment.
type Config struct {
	LogLevel  string `env:"GEOCALC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GEOCALC_LOG_FORMAT" envDefault:"text"`
	Locale    string `env:"GEOCALC_LOCALE" envDefault:"en"`
}

func (c Config) level() (slog.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

func (c Config) format() (logger.Format, error) {
	return logger.ParseFormat(c.LogFormat)
}

func parseLocale(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: locale %q", ErrInvalidArgument, s)
	}
	return tag, nil
}
