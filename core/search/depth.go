// Package search - Depth-bounded approximate strategy
package search

import (
	"context"

	"supplier-cost/core/cost"
	"supplier-cost/core/enumerate"
	"supplier-cost/internal/errors"
)

// runDepth traverses the enumeration tree depth-first, one product
// resolved per level, abandoning any branch once the depth bound is
// reached. Partial assignments at the bound are discarded, not
// completed: with a bound below the product count the search space is a
// strict subset and the result may be absent entirely. Only a bound of
// at least the product count makes this equivalent to the exhaustive
// strategies.
func runDepth(ctx context.Context, model *cost.Model, space *enumerate.Space, bound int) (*Result, error) {
	n := len(space.Products())

	quality := QualityApproximate
	if bound >= n {
		quality = QualityOptimal
	}
	result := &Result{Quality: quality}

	picks := make(enumerate.Tuple, n)
	var interrupted error

	var walk func(level int)
	walk = func(level int) {
		if interrupted != nil {
			return
		}
		// The bound check precedes the leaf check, so a bound below the
		// product count prunes every complete assignment too.
		if level > bound {
			return
		}
		if level == n {
			if result.Evaluated%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					interrupted = errors.Interrupted(err)
					return
				}
			}
			tuple := make(enumerate.Tuple, n)
			copy(tuple, picks)
			evaluate(model, space, tuple, result)
			return
		}
		for i := range space.Candidates(level) {
			picks[level] = i
			walk(level + 1)
		}
	}
	walk(0)

	if interrupted != nil {
		return result, interrupted
	}
	return result, nil
}
