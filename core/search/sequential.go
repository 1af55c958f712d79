// Package search - Exhaustive sequential strategy
package search

import (
	"context"

	"go.uber.org/zap"

	"supplier-cost/core/cost"
	"supplier-cost/core/enumerate"
	"supplier-cost/internal/errors"
	"supplier-cost/internal/logging"
)

// cancelCheckInterval is how many candidates are scored between context
// checks in tight loops.
const cancelCheckInterval = 1024

// runSequential walks the full candidate stream once, retaining the
// running minimum. O(space size) evaluations; the correctness baseline
// for every other strategy.
func runSequential(ctx context.Context, model *cost.Model, space *enumerate.Space) (*Result, error) {
	result := &Result{Quality: QualityOptimal}
	cursor := space.Cursor()

	for {
		if result.Evaluated%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return result, errors.Interrupted(err)
			}
		}

		tuple, ok := cursor.Next()
		if !ok {
			return result, nil
		}

		evaluate(model, space, tuple, result)
	}
}

// evaluate scores one candidate into the result. Lookup failures are
// fatal to the single candidate only: it is excluded and counted.
func evaluate(model *cost.Model, space *enumerate.Space, tuple enumerate.Tuple, result *Result) {
	assignment := space.Assignment(tuple)
	total, _, err := model.Evaluate(assignment)
	if err != nil {
		result.Failed++
		logging.Warn("candidate excluded", zap.Error(err))
		return
	}
	result.Evaluated++
	result.merge(assignment, total)
}
