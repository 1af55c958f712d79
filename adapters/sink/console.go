// Package sink - Console result sink
package sink

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"supplier-cost/core/cost"
	"supplier-cost/core/types"
)

// ConsoleSink renders the result as aligned tables on a writer
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink creates a console sink
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

// Publish renders the assignment and per-supplier summaries
func (s *ConsoleSink) Publish(ctx context.Context, pairs []types.Pair, summaries []cost.Breakdown) error {
	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)

	fmt.Fprintln(w, "PRODUCT\tSUPPLIER")
	for _, p := range pairs {
		fmt.Fprintf(w, "%s\t%s\n", p.ProductID, p.Supplier)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SUPPLIER\tWEIGHT\tNET\tGROSS\tSHIPPING\tPACKAGING\tTOTAL")
	for _, b := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Supplier,
			b.Weight.String(),
			b.Net.StringFixed(2),
			b.Gross.StringFixed(2),
			b.Shipping.StringFixed(2),
			b.Packaging.StringFixed(2),
			b.Total().StringFixed(2))
	}

	return w.Flush()
}
