package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/bench"
	"github.com/Abdullahlab-n/VGC-for-arxiv/internal/config"
)

var (
	benchConfigPath string
	benchWorkload   string
	benchNoPin      bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run the single-core measurement workloads",
	Long:  "Runs the reference workloads (matrix multiply, chunked deep recursion, short-checksum loop) pinned to one core, reporting elapsed time, checksum, and resident memory around each run.",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().StringVar(&benchConfigPath, "config", "", "config file (default ~/.vgc/config.toml)")
	benchCmd.Flags().StringVar(&benchWorkload, "workload", "all", "workload to run: matrix, recursion, loop, or all")
	benchCmd.Flags().BoolVar(&benchNoPin, "no-pin", false, "skip pinning the benchmark thread to one core")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfgPath := benchConfigPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	bc := cfg.Bench

	if !benchNoPin {
		// The pin applies to the OS thread, so hold it for the whole run.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := bench.PinToCore(bc.PinCore); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, running unpinned\n", err)
		}
	}

	fmt.Println("=== VGC Single-Core Benchmark ===")

	var results []bench.Result
	switch benchWorkload {
	case "matrix":
		results = append(results, runMatrix(bc))
	case "recursion":
		results = append(results, runRecursion(bc))
	case "loop":
		results = append(results, runLoop(bc))
	case "all":
		results = append(results, runMatrix(bc), runRecursion(bc), runLoop(bc))
	default:
		return fmt.Errorf("unknown workload %q", benchWorkload)
	}

	for _, res := range results {
		fmt.Printf("\n[%s]\n", res.Name)
		fmt.Printf("Time: %.6f ms\n", float64(res.Elapsed.Nanoseconds())/1e6)
		fmt.Printf("Checksum: %d\n", res.Checksum)
		fmt.Printf("Memory Before: %d KB\n", res.MemBeforeKB)
		fmt.Printf("Memory After : %d KB\n", res.MemAfterKB)
		fmt.Printf("Memory Delta : %d KB\n", res.MemDeltaKB())
	}

	if peak, err := bench.PeakRSSKB(); err == nil {
		fmt.Printf("\nPeak RSS: %d KB\n", peak)
	}
	return nil
}

func runMatrix(bc config.BenchConfig) bench.Result {
	name := fmt.Sprintf("Matrix Multiply %dx%d", bc.MatrixSize, bc.MatrixSize)
	return bench.Measure(name, func() int16 {
		return bench.MatrixChecksum(bc.MatrixSize)
	})
}

func runRecursion(bc config.BenchConfig) bench.Result {
	name := fmt.Sprintf("Deep Recursion %d steps (depth %d)", bc.RecursionSteps, bc.RecursionDepth)
	return bench.Measure(name, func() int16 {
		return bench.DeepChecksum(bc.RecursionSteps, bc.RecursionDepth)
	})
}

func runLoop(bc config.BenchConfig) bench.Result {
	name := fmt.Sprintf("Loop Checksum %d iterations", bc.LoopCount)
	return bench.Measure(name, func() int16 {
		return bench.LoopChecksum(bc.LoopCount)
	})
}
