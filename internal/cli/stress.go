package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/qntx/nativelib/internal/boundary"
	"github.com/qntx/nativelib/internal/core"
	"github.com/qntx/nativelib/internal/cstr"
	"github.com/qntx/nativelib/internal/ui"
)

var (
	stressWorkers    int
	stressIterations int
	stressCmd        = &cobra.Command{
		Use:   "stress",
		Short: "Call sum and greeting from many goroutines at once",
		Long: `Stress starts a number of workers that call sum, greeting and
release_string concurrently and checks every result.`,
		Args: cobra.NoArgs,
		RunE: runStress,
	}
)

func init() {
	f := stressCmd.Flags()
	f.IntVarP(&stressWorkers, "workers", "w", 0, "concurrent workers (default from config)")
	f.IntVarP(&stressIterations, "iterations", "n", 0, "calls per worker (default from config)")
	rootCmd.AddCommand(stressCmd)
}

type workerResult struct {
	Sums      int
	Greetings int
}

func runStress(cmd *cobra.Command, _ []string) error {
	workers, iterations := cfg.Stress.Workers, cfg.Stress.Iterations
	if cmd.Flags().Changed("workers") {
		workers = stressWorkers
	}
	if cmd.Flags().Changed("iterations") {
		iterations = stressIterations
	}
	if workers <= 0 || iterations <= 0 {
		return fmt.Errorf("workers and iterations must be positive, got %d and %d", workers, iterations)
	}

	start := time.Now()
	results, err := stress(cmd.Context(), workers, iterations)
	if err != nil {
		ui.Error("%v", err)
		return err
	}

	ui.Header("stress")
	tbl := ui.NewTable("WORKER", "SUMS", "GREETINGS")
	for i, r := range results {
		tbl.AddRow(strconv.Itoa(i), strconv.Itoa(r.Sums), strconv.Itoa(r.Greetings))
	}
	tbl.Render()
	ui.Done(fmt.Sprintf("%d workers × %d calls", workers, iterations), time.Since(start))
	return nil
}

// stress runs each worker over its own operand range.
func stress(ctx context.Context, workers, iterations int) ([]workerResult, error) {
	want := core.HelloWorld()
	base := cstr.Live()
	results := make([]workerResult, workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			r := &results[w]
			hi := uint64(w) << 40
			for i := range iterations {
				if err := ctx.Err(); err != nil {
					return err
				}

				a, b := hi|uint64(i), ^uint64(0)-uint64(i)
				if got := boundary.Sum(a, b); got != a+b {
					return fmt.Errorf("worker %d: %w: sum(%d, %d) = %d", w, ErrMismatch, a, b, got)
				}
				r.Sums++

				p := greeting()
				got := boundary.GoString(p)
				releaseString(p)
				if got != want {
					return fmt.Errorf("worker %d: %w: greeting %q", w, ErrMismatch, got)
				}
				r.Greetings++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	if live := cstr.Live(); live != base {
		return results, fmt.Errorf("%w: %d live after stress, baseline %d", ErrLeak, live, base)
	}
	return results, nil
}
