// Package search - Memory-adaptive disk-batched strategy
package search

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"supplier-cost/core/batch"
	"supplier-cost/core/cost"
	"supplier-cost/core/enumerate"
	"supplier-cost/internal/errors"
	"supplier-cost/internal/logging"
)

const gib = 1 << 30

// runAdaptive groups the lazy candidate stream into batches, persists
// each batch to dir before scheduling it, then has a worker pool read
// every persisted batch exactly once and reduce the local minima.
//
// The batch size is resampled at every batch boundary against available
// memory headroom: below the margin it halves (floor 1), above it it
// doubles back toward the initial size. Peak memory is bounded to one
// batch's worth of candidates regardless of space size.
func runAdaptive(ctx context.Context, model *cost.Model, space *enumerate.Space, dir string, initialSize int, marginGB float64, workers int) (*Result, error) {
	paths, err := persistBatches(ctx, space, dir, initialSize, marginGB)
	if err != nil {
		return &Result{Quality: QualityOptimal}, err
	}

	return evaluateBatches(ctx, model, space, paths, workers)
}

// persistBatches enumerates the space into durable batch files and
// returns their paths. A batch whose write fails is retried once, then
// dropped; enumeration of the remaining batches proceeds.
func persistBatches(ctx context.Context, space *enumerate.Space, dir string, size int, marginGB float64) ([]string, error) {
	if size < 1 {
		size = 1
	}
	initial := size

	var paths []string
	cursor := space.Cursor()
	buf := make([]enumerate.Tuple, 0, size)
	index := 0
	seen := uint64(0)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		b := batch.New(index, buf)
		if err := b.Persist(dir); err != nil {
			logging.Warn("batch persist failed, retrying", zap.Int("batch", index), zap.Error(err))
			b = batch.New(index, buf)
			if err := b.Persist(dir); err != nil {
				// Fatal to this batch only.
				logging.Error("batch lost after retry", zap.Int("batch", index), zap.Error(err))
				index++
				buf = make([]enumerate.Tuple, 0, size)
				return
			}
		}
		paths = append(paths, b.Path())
		index++
		buf = make([]enumerate.Tuple, 0, size)
	}

	for {
		if seen%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return paths, errors.Interrupted(err)
			}
		}

		tuple, ok := cursor.Next()
		if !ok {
			break
		}
		seen++

		buf = append(buf, tuple)
		if len(buf) >= size {
			flush()
			size = resampleBatchSize(size, initial, marginGB)
		}
	}
	flush()

	logging.Info("candidate space persisted",
		zap.Int("batches", len(paths)),
		zap.Uint64("candidates", seen),
		zap.Int("final_batch_size", size))
	return paths, nil
}

// resampleBatchSize adapts the batch size to current memory headroom
func resampleBatchSize(size, initial int, marginGB float64) int {
	avail, err := batch.AvailableMemory()
	if err != nil {
		logging.Warn("memory sample failed, keeping batch size", zap.Error(err))
		return size
	}

	if float64(avail) < marginGB*gib {
		size /= 2
		if size < 1 {
			size = 1
		}
	} else {
		size *= 2
		if size > initial {
			size = initial
		}
	}
	return size
}

// evaluateBatches reads each persisted batch exactly once on a worker
// pool and reduces the per-batch minima to the global minimum. A batch
// whose read fails is retried once, then abandoned; other batches
// proceed.
func evaluateBatches(ctx context.Context, model *cost.Model, space *enumerate.Space, paths []string, workers int) (*Result, error) {
	locals := make(chan *Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range paths {
		if gctx.Err() != nil {
			break
		}
		path := path
		g.Go(func() error {
			b, err := batch.Load(path)
			if err != nil {
				logging.Warn("batch load failed, retrying", zap.String("path", path), zap.Error(err))
				if b, err = batch.Load(path); err != nil {
					logging.Error("batch abandoned after retry", zap.String("path", path), zap.Error(err))
					return nil
				}
			}

			local := &Result{Quality: QualityOptimal}
			n := uint64(0)
			for _, tuple := range b.Tuples() {
				if n%cancelCheckInterval == 0 && gctx.Err() != nil {
					break
				}
				n++
				evaluate(model, space, tuple, local)
			}
			b.MarkEvaluated()
			if err := b.Discard(); err != nil {
				logging.Warn("batch discard failed", zap.String("path", path), zap.Error(err))
			}

			locals <- local
			return nil
		})
	}

	_ = g.Wait()
	close(locals)

	result := &Result{Quality: QualityOptimal}
	for local := range locals {
		result.Evaluated += local.Evaluated
		result.Failed += local.Failed
		if local.Found {
			result.merge(local.Best, local.MinCost)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, errors.Interrupted(err)
	}
	return result, nil
}
