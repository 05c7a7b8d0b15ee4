package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geokit/pkg/config"
)

var envKeys = []string{
	"GEO_DECIMAL_PLACES",
	"GEO_MIN_ALTITUDE",
	"GEO_MAX_ALTITUDE",
	"GEO_REJECT_ZERO_LENGTH_SEGMENTS",
	"GEO_CHECK_SELF_INTERSECTION",
	"GEO_MAX_VERTICES",
	"GEO_MAX_SEGMENTS",
	"GEOCALC_LOG_LEVEL",
	"GEOCALC_LOG_FORMAT",
	"GEOCALC_LOCALE",
}

// resetFlags restores every flag to its default so one Execute does not leak
// into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// Unset GEO_* and GEOCALC_* for the test; t.Setenv restores them afterwards.
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	config.ResetCache()
	resetFlags(rootCmd)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
