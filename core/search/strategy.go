// Package search - Search strategies and controller
//
// Four strategies consume the same enumerator and cost model and return
// a Result of identical shape; they differ in completeness and resource
// profile. Sequential and parallel are exhaustive, depth is a bounded
// approximation, adaptive is exhaustive with disk-batched bounded
// memory.
package search

import (
	"github.com/shopspring/decimal"

	"supplier-cost/core/types"
)

// Strategy selects a search algorithm
type Strategy string

const (
	// StrategySequential is the exhaustive single-pass baseline
	StrategySequential Strategy = "sequential"

	// StrategyParallel is the exhaustive fixed-pool parallel search
	StrategyParallel Strategy = "parallel"

	// StrategyDepth is the depth-bounded approximate search
	StrategyDepth Strategy = "depth"

	// StrategyAdaptive is the memory-adaptive disk-batched search
	StrategyAdaptive Strategy = "adaptive"
)

// Quality labels how a result was obtained. Only exhaustive strategies
// over the full space may report Optimal; callers must never conflate
// the two.
type Quality string

const (
	QualityOptimal     Quality = "optimal"
	QualityApproximate Quality = "approximate"
)

// Result is the outcome of one search run
type Result struct {
	// Best is the minimal-cost assignment found. Nil when the space is
	// empty, the bound discarded every complete assignment, or the run
	// was cancelled before any candidate was scored; Found mirrors it.
	Best    types.Assignment `json:"best,omitempty"`
	MinCost decimal.Decimal  `json:"min_cost"`
	Found   bool             `json:"found"`

	// Quality labels the result optimal or approximate
	Quality Quality `json:"quality"`

	// Evaluated counts scored candidates; Failed counts candidates
	// dropped by per-evaluation lookup failures.
	Evaluated uint64 `json:"evaluated"`
	Failed    uint64 `json:"failed"`
}

// merge folds another candidate score into the running minimum.
// Strictly-less keeps the first minimal assignment seen; any cost-tied
// assignment is an acceptable winner.
func (r *Result) merge(a types.Assignment, cost decimal.Decimal) {
	if !r.Found || cost.LessThan(r.MinCost) {
		r.Best = a
		r.MinCost = cost
		r.Found = true
	}
}
