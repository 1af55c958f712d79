// Package search - Exhaustive parallel strategy
package search

import (
	"context"
	"sync"

	"supplier-cost/core/cost"
	"supplier-cost/core/enumerate"
	"supplier-cost/internal/errors"
)

// runParallel materializes the candidate stream and spreads evaluation
// over a fixed-size worker pool pulling from a shared channel. Workers
// finish in arbitrary order; the min reduction is commutative and
// associative, so the cost is identical to the sequential baseline on
// the same input (the winning assignment may be any cost-tied one).
func runParallel(ctx context.Context, model *cost.Model, space *enumerate.Space, workers int) (*Result, error) {
	var tuples []enumerate.Tuple
	cursor := space.Cursor()
	for {
		tuple, ok := cursor.Next()
		if !ok {
			break
		}
		tuples = append(tuples, tuple)
	}

	if workers > len(tuples) {
		workers = len(tuples)
	}

	work := make(chan enumerate.Tuple, len(tuples))
	for _, t := range tuples {
		work <- t
	}
	close(work)

	locals := make(chan *Result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := &Result{Quality: QualityOptimal}
			n := uint64(0)
			for tuple := range work {
				if n%cancelCheckInterval == 0 && ctx.Err() != nil {
					break
				}
				n++
				evaluate(model, space, tuple, local)
			}
			locals <- local
		}()
	}
	wg.Wait()
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
