// Package search - Search controller
package search

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"supplier-cost/core/catalog"
	"supplier-cost/core/cost"
	"supplier-cost/core/enumerate"
	"supplier-cost/core/types"
	"supplier-cost/internal/errors"
	"supplier-cost/internal/logging"
)

// Options configures a search run
type Options struct {
	// Strategy selects the algorithm
	Strategy Strategy

	// Workers is the worker pool size (default = available core count)
	Workers int

	// InitialBatchSize is the starting batch size for the adaptive
	// strategy (default 1000)
	InitialBatchSize int

	// MemoryMarginGB is the adaptive strategy's headroom margin in GiB
	// (default 2)
	MemoryMarginGB float64

	// DepthBound is the depth strategy's branch bound
	DepthBound int

	// TempDir is where the adaptive strategy persists batches. Empty
	// means a fresh directory under the system temp dir.
	TempDir string

	// Timeout is the per-run deadline. Zero disables it.
	Timeout time.Duration

	// Required overrides the required-products list. Nil means the
	// union of ids across all loaded catalogs.
	Required []string
}

func (o Options) withDefaults() Options {
	if o.Strategy == "" {
		o.Strategy = StrategyAdaptive
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.InitialBatchSize <= 0 {
		o.InitialBatchSize = 1000
	}
	if o.MemoryMarginGB <= 0 {
		o.MemoryMarginGB = 2
	}
	return o
}

// Controller selects and drives a strategy and owns the scoped lifetime
// of a run, including the temporary-storage location of the adaptive
// strategy.
type Controller struct {
	opts Options
}

// NewController creates a controller
func NewController(opts Options) *Controller {
	return &Controller{opts: opts.withDefaults()}
}

// Run executes the configured strategy over the catalog. The
// temporary-storage location is fully cleared before Run returns, on
// every exit path: normal completion, propagated error, or external
// cancellation.
func (c *Controller) Run(ctx context.Context, index *catalog.Index, tiers types.TierTable) (*Result, error) {
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	space, unsourceable := enumerate.Build(index, c.opts.Required)
	for _, id := range unsourceable {
		logging.Warn("product has no capable supplier, excluded",
			zap.String("product", id))
	}

	if space.Empty() {
		logging.Warn("candidate space is empty, nothing to search")
		return &Result{Quality: QualityOptimal}, nil
	}

	logging.Info("starting search",
		zap.String("strategy", string(c.opts.Strategy)),
		zap.Int("products", len(space.Products())),
		zap.Uint64("candidates", space.Size()),
		zap.Int("workers", c.opts.Workers))

	model := cost.NewModel(index, tiers)
	start := time.Now()

	var result *Result
	var err error
	switch c.opts.Strategy {
	case StrategySequential:
		result, err = runSequential(ctx, model, space)
	case StrategyParallel:
		result, err = runParallel(ctx, model, space, c.opts.Workers)
	case StrategyDepth:
		result, err = runDepth(ctx, model, space, c.opts.DepthBound)
	case StrategyAdaptive:
		dir, dirErr := c.tempDir()
		if dirErr != nil {
			return nil, dirErr
		}
		defer c.cleanup(dir)
		result, err = runAdaptive(ctx, model, space, dir, c.opts.InitialBatchSize, c.opts.MemoryMarginGB, c.opts.Workers)
	default:
		return nil, errors.Newf(errors.TypeConfig, "unknown strategy %q", c.opts.Strategy)
	}

	elapsed := time.Since(start)
	if err != nil {
		if errors.IsType(err, errors.TypeInterrupted) {
			logging.Info("search interrupted",
				zap.Duration("elapsed", elapsed),
				zap.Uint64("evaluated", result.Evaluated))
		}
		return result, err
	}

	logging.Info("search complete",
		zap.Duration("elapsed", elapsed),
		zap.Uint64("evaluated", result.Evaluated),
		zap.Uint64("failed", result.Failed),
		zap.String("quality", string(result.Quality)),
		zap.Bool("found", result.Found))
	return result, nil
}

// tempDir resolves the temporary-storage location for batch files
func (c *Controller) tempDir() (string, error) {
	if c.opts.TempDir != "" {
		if err := os.MkdirAll(c.opts.TempDir, 0755); err != nil {
			return "", errors.Resource("creating temp dir", err)
		}
		return c.opts.TempDir, nil
	}
	dir, err := os.MkdirTemp("", "supplier-cost-batches-*")
	if err != nil {
		return "", errors.Resource("creating temp dir", err)
	}
	return dir, nil
}

// cleanup clears the temporary-storage location. Removal is idempotent:
// an absent or already-empty directory is not an error. Failures are
// logged and never re-raised.
func (c *Controller) cleanup(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("temp dir cleanup failed", zap.String("dir", dir), zap.Error(err))
		}
		return
	}

	var errs error
	for _, entry := range entries {
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	errs = multierr.Append(errs, os.Remove(dir))

	if errs != nil {
		logging.Warn("temp dir cleanup incomplete", zap.String("dir", dir), zap.Error(errs))
		return
	}
	logging.Debug("temp dir cleared", zap.String("dir", dir))
}
