package cli

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qntx/nativelib/internal/boundary"
	"github.com/qntx/nativelib/internal/core"
	"github.com/qntx/nativelib/internal/cstr"
	"github.com/qntx/nativelib/internal/ui"
)

var (
	soakCycles int
	soakCmd    = &cobra.Command{
		Use:   "soak",
		Short: "Allocate and release the greeting repeatedly and check for leaks",
		Long: `Soak runs greeting/release_string cycles and verifies after every cycle
that the number of live boundary strings is back to its baseline.

Go heap usage before and after the run is reported for reference; C heap
blocks are tracked by the live counter.`,
		Args: cobra.NoArgs,
		RunE: runSoak,
	}
)

func init() {
	soakCmd.Flags().IntVarP(&soakCycles, "cycles", "n", 0, "number of cycles (default from config)")
	rootCmd.AddCommand(soakCmd)
}

type soakReport struct {
	Cycles   int
	Baseline int64
	Final    int64
	HeapDiff int64
	Elapsed  time.Duration
}

func runSoak(cmd *cobra.Command, _ []string) error {
	cycles := cfg.Soak.Cycles
	if cmd.Flags().Changed("cycles") {
		cycles = soakCycles
	}
	if cycles <= 0 {
		return fmt.Errorf("cycles must be positive, got %d", cycles)
	}

	rep, err := soak(cmd.Context(), cycles)
	ui.Header("soak")
	ui.Label("cycles", strconv.Itoa(rep.Cycles))
	ui.Label("live", fmt.Sprintf("%d → %d", rep.Baseline, rep.Final))
	ui.Label("go heap", ui.FormatSize(rep.HeapDiff))
	if err != nil {
		ui.Error("%v", err)
		return err
	}
	ui.Done(fmt.Sprintf("%d cycles, no leaks", rep.Cycles), rep.Elapsed)
	return nil
}

// soak stops at the first cycle that leaves a string live or returns the
// wrong text.
func soak(ctx context.Context, cycles int) (rep soakReport, err error) {
	want := core.HelloWorld()
	rep.Baseline = cstr.Live()

	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	defer func() {
		rep.Elapsed = time.Since(start)
		rep.Final = cstr.Live()
	}()

	for i := range cycles {
		if i%1024 == 0 && ctx.Err() != nil {
			return rep, ctx.Err()
		}

		p := greeting()
		if p == nil {
			return rep, fmt.Errorf("cycle %d: %w: null greeting", i, ErrMismatch)
		}
		got := boundary.GoString(p)
		releaseString(p)
		rep.Cycles = i + 1

		if got != want {
			return rep, fmt.Errorf("cycle %d: %w: greeting %q", i, ErrMismatch, got)
		}
		if live := cstr.Live(); live != rep.Baseline {
			return rep, fmt.Errorf("cycle %d: %w: %d live, baseline %d", i, ErrLeak, live, rep.Baseline)
		}
	}

	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	rep.HeapDiff = int64(after.HeapAlloc) - int64(before.HeapAlloc)

	boundary.Logger().Debug("soak finished",
		zap.Int("cycles", rep.Cycles),
		zap.Int64("heap_diff", rep.HeapDiff))
	return rep, nil
}
