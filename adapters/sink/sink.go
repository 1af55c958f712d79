// Package sink publishes winning assignments to result destinations.
package sink

import (
	"context"

	"supplier-cost/core/cost"
	"supplier-cost/core/types"
)

// Sink accepts the winning assignment as an ordered (product, supplier)
// sequence plus one fixed-field summary record per supplier.
type Sink interface {
	Publish(ctx context.Context, pairs []types.Pair, summaries []cost.Breakdown) error
}
