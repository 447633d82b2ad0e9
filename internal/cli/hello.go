package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qntx/nativelib/internal/boundary"
	"github.com/qntx/nativelib/internal/ui"
)

// Entry points used by the commands; tests swap them to inject faults.
var (
	greeting      = boundary.Greeting
	releaseString = boundary.ReleaseString
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Call greeting and release the returned string",
	Args:  cobra.NoArgs,
	RunE:  runHello,
}

func init() {
	rootCmd.AddCommand(helloCmd)
}

func runHello(cmd *cobra.Command, _ []string) error {
	s, err := fetchGreeting()
	if err != nil {
		return err
	}
	if verbose {
		ui.Call("greeting", "", fmt.Sprintf("%q", s))
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

// fetchGreeting copies the greeting out of the C heap and releases it on
// every path.
func fetchGreeting() (string, error) {
	p := greeting()
	if p == nil {
		return "", fmt.Errorf("greeting: %w: null pointer", ErrMismatch)
	}
	defer releaseString(p)
	return boundary.GoString(p), nil
}
