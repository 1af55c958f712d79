// Package cmd - optimize command
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"supplier-cost/adapters/sink"
	"supplier-cost/adapters/source"
	"supplier-cost/core/catalog"
	"supplier-cost/core/cost"
	"supplier-cost/core/search"
	"supplier-cost/internal/config"
	"supplier-cost/internal/errors"
)

var (
	strategy     string
	workers      int
	batchSize    int
	memoryMargin float64
	depthBound   int
	tempDir      string
	timeoutSecs  int
	outputFormat string
	outputDir    string
)

// optimizeCmd represents the optimize command
var optimizeCmd = &cobra.Command{
	Use:   "optimize [path]",
	Short: "Find the cheapest supplier assignment for a quotation set",
	Long: `Load supplier quotations and condition tiers from a data directory,
search the candidate assignment space, and publish the cheapest
allocation.

The path is a directory containing settings.csv, conditions.csv, and
one <GROUP>.csv per supplier quotation.

Examples:
  supplier-cost optimize ./quotes
  supplier-cost optimize --strategy depth --depth 3 ./quotes
  supplier-cost optimize --strategy adaptive --batch-size 500 ./quotes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOptimize,
}

func init() {
	cfg := config.Default()
	optimizeCmd.Flags().StringVarP(&strategy, "strategy", "s", cfg.Search.Strategy, "search strategy (sequential, parallel, depth, adaptive)")
	optimizeCmd.Flags().IntVarP(&workers, "workers", "w", cfg.Search.Workers, "worker pool size")
	optimizeCmd.Flags().IntVar(&batchSize, "batch-size", cfg.Search.InitialBatchSize, "initial batch size (adaptive strategy)")
	optimizeCmd.Flags().Float64Var(&memoryMargin, "memory-margin", cfg.Search.MemoryMarginGB, "memory headroom margin in GiB (adaptive strategy)")
	optimizeCmd.Flags().IntVar(&depthBound, "depth", 0, "depth bound (depth strategy)")
	optimizeCmd.Flags().StringVar(&tempDir, "temp-dir", "", "temporary storage for persisted batches")
	optimizeCmd.Flags().IntVar(&timeoutSecs, "timeout", 0, "per-run deadline in seconds (0 = none)")
	optimizeCmd.Flags().StringVarP(&outputFormat, "format", "f", cfg.Output.Format, "result format (console, csv)")
	optimizeCmd.Flags().StringVar(&outputDir, "out", cfg.Output.Directory, "output directory for csv results")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}

	cfg := config.Get()
	opts := buildOptions(cmd, cfg)

	// Resolve the sink up front so a bad output format fails before the
	// search runs, not after.
	format, dir := buildOutput(cmd, cfg)
	out, err := newSink(format, dir)
	if err != nil {
		return err
	}

	adapter := source.NewCSVAdapter(path)
	index, tiers, err := catalog.Load(ctx, adapter, cfg.Groups)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if index.Len() == 0 {
		fmt.Println("No data groups enabled; nothing to optimize.")
		return nil
	}

	controller := search.NewController(opts)
	result, err := controller.Run(ctx, index, tiers)
	if err != nil {
		if errors.IsType(err, errors.TypeInterrupted) {
			// Orderly shutdown, not a failure outcome.
			fmt.Println(interruptNotice(result))
			return nil
		}
		return err
	}

	if !result.Found {
		fmt.Println("No feasible assignment found.")
		return nil
	}

	model := cost.NewModel(index, tiers)
	_, breakdowns, err := model.Evaluate(result.Best)
	if err != nil {
		return fmt.Errorf("summarizing winner: %w", err)
	}

	if err := out.Publish(ctx, result.Best.Pairs(), breakdowns); err != nil {
		return fmt.Errorf("publishing result: %w", err)
	}

	fmt.Printf("\nMinimum total cost: %s (%s, %d candidates evaluated)\n",
		result.MinCost.StringFixed(2), result.Quality, result.Evaluated)
	return nil
}

// interruptNotice summarizes an interrupted run. The partial best found
// before the interrupt is reported when there is one.
func interruptNotice(result *search.Result) string {
	if result != nil && result.Found {
		return fmt.Sprintf("Interrupted; best found so far: %s (%d candidates evaluated)",
			result.MinCost.StringFixed(2), result.Evaluated)
	}
	return "Interrupted before any candidate was scored."
}

// newSink resolves the result sink for an output format
func newSink(format, dir string) (sink.Sink, error) {
	switch format {
	case "csv":
		return sink.NewCSVSink(dir), nil
	case "console":
		return sink.NewConsoleSink(os.Stdout), nil
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown output format %q (console, csv)", format)
	}
}

// buildOutput merges output settings the same way buildOptions merges
// search settings; explicitly set flags win over the config file.
func buildOutput(cmd *cobra.Command, cfg *config.Config) (format, dir string) {
	format = cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = outputFormat
	}
	dir = cfg.Output.Directory
	if cmd.Flags().Changed("out") {
		dir = outputDir
	}
	return format, dir
}

// buildOptions merges config-file settings with explicitly set flags;
// flags win where given.
func buildOptions(cmd *cobra.Command, cfg *config.Config) search.Options {
	opts := search.Options{
		Strategy:         search.Strategy(cfg.Search.Strategy),
		Workers:          cfg.Search.Workers,
		InitialBatchSize: cfg.Search.InitialBatchSize,
		MemoryMarginGB:   cfg.Search.MemoryMarginGB,
		DepthBound:       cfg.Search.DepthBound,
		TempDir:          cfg.Search.TempDir,
		Timeout:          time.Duration(cfg.Search.TimeoutSeconds) * time.Second,
	}

	if cmd.Flags().Changed("strategy") {
		opts.Strategy = search.Strategy(strategy)
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = workers
	}
	if cmd.Flags().Changed("batch-size") {
		opts.InitialBatchSize = batchSize
	}
	if cmd.Flags().Changed("memory-margin") {
		opts.MemoryMarginGB = memoryMargin
	}
	if cmd.Flags().Changed("depth") {
		opts.DepthBound = depthBound
	}
	if cmd.Flags().Changed("temp-dir") {
		opts.TempDir = tempDir
	}
	if cmd.Flags().Changed("timeout") {
		opts.Timeout = time.Duration(timeoutSecs) * time.Second
	}

	return opts
}
