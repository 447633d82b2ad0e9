package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/qntx/nativelib/internal/boundary"
	"github.com/qntx/nativelib/internal/tui"
	"github.com/qntx/nativelib/internal/ui"
)

var (
	addInteractive bool
	addCmd         = &cobra.Command{
		Use:   "add [left right]",
		Short: "Call sum with two unsigned 64-bit operands",
		Long: `Add calls the exported sum symbol and prints the result.

Without arguments the operands come from the [demo] section of
nativelib.toml. The result wraps modulo 2^64.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: runAdd,
	}
)

func init() {
	addCmd.Flags().BoolVarP(&addInteractive, "interactive", "i", false, "prompt for operands")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	left, right, err := operands(args)
	if err != nil {
		return err
	}

	if addInteractive {
		if err := tui.PromptOperands(&left, &right); err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
	}

	got := boundary.Sum(left, right)
	if verbose {
		ui.Call("sum", fmt.Sprintf("%d, %d", left, right), strconv.FormatUint(got, 10))
	}
	fmt.Fprintln(cmd.OutOrStdout(), got)
	return nil
}

func operands(args []string) (left, right uint64, err error) {
	if len(args) == 0 {
		return cfg.Demo.Left, cfg.Demo.Right, nil
	}
	if left, err = tui.ParseOperand(args[0]); err != nil {
		return 0, 0, err
	}
	if right, err = tui.ParseOperand(args[1]); err != nil {
		return 0, 0, err
	}
	return left, right, nil
}
