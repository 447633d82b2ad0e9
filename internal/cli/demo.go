package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/qntx/nativelib/internal/boundary"
	"github.com/qntx/nativelib/internal/cstr"
	"github.com/qntx/nativelib/internal/ui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Call every exported symbol once",
	Long: `Demo adds the configured operands, fetches the greeting, releases it,
and checks that no boundary string is left behind.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	ui.Header("nativelib demo")

	base := cstr.Live()
	a, b := cfg.Demo.Left, cfg.Demo.Right
	ui.Call("sum", fmt.Sprintf("%d, %d", a, b), strconv.FormatUint(boundary.Sum(a, b), 10))

	s, err := fetchGreeting()
	if err != nil {
		return err
	}
	ui.Call("greeting", "", fmt.Sprintf("%q", s))
	releaseString(nil)
	ui.Call("release_string", "NULL", "no-op")

	if live := cstr.Live(); live != base {
		ui.Error("%d boundary string(s) still live", live-base)
		return ErrLeak
	}
	ui.Success("all strings released")
	return nil
}
