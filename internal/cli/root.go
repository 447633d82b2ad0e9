package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qntx/nativelib/internal/boundary"
	"github.com/qntx/nativelib/internal/config"
)

var (
	// ErrLeak reports boundary strings still live after their release.
	ErrLeak = errors.New("boundary string leak")
	// ErrMismatch reports a boundary call returning an unexpected value.
	ErrMismatch = errors.New("unexpected result")
)

var (
	configFile string
	verbose    bool
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "nativelib",
	Short: "Drive the nativelib C ABI from Go",
	Long: `nativelib calls the symbols exported by the libnative shared library
(sum, greeting, release_string) through the same code path a C caller uses.

Settings can be loaded from nativelib.toml in the current or parent directories.
CLI flags override config file values.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&configFile, "config", "c", "", "config file path (default: nativelib.toml)")
	f.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.LoadOrDefault(configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg = c

	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	boundary.SetLogger(l)
	return nil
}

// newLogger always reports errors so a failed string construction is
// visible before the process aborts.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return zc.Build()
}
