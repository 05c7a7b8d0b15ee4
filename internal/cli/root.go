package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/geokit/pkg/config"
	"github.com/dmitrymomot/geokit/pkg/geo"
	"github.com/dmitrymomot/geokit/pkg/logger"
)

var version = "dev"

var (
	envFile string
	verbose bool
)

// Loaded by the root command before any subcommand runs.
var (
	settings Config
	policy   = geo.DefaultPolicy()
	log      = logger.Discard()
)

type commandKey struct{}

var rootCmd = &cobra.Command{
	Use:   "geocalc",
	Short: "Validate coordinates and measure distances, boundaries and routes",
	Long: `geocalc validates geographic coordinates and computes great-circle
distances, polygon measurements and multi-segment route totals.

Validation rules are read from GEO_* environment variables or an env file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file first")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")
}

// Execute runs the root command. Command output goes to stdout, logs and
// errors to stderr.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&settings); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := config.Load(&policy); err != nil {
		return fmt.Errorf("load validation policy: %w", err)
	}

	level, err := settings.level()
	if err != nil {
		return err
	}
	format, err := settings.format()
	if err != nil {
		return err
	}
	log = logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithVerbose(verbose),
		logger.WithService("geocalc", version),
		logger.WithContextValue("command", commandKey{}),
	)

	cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
	if translator, err = loadTranslator(cmd.Context()); err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	log.DebugContext(cmd.Context(), "policy loaded",
		slog.Int("decimal_places", policy.DecimalPlaces),
		slog.Bool("reject_zero_length", policy.RejectZeroLengthSegments),
		slog.Bool("check_self_intersection", policy.CheckSelfIntersection),
	)
	return nil
}
