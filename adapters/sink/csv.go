// Package sink - CSV result sink
package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"supplier-cost/core/cost"
	"supplier-cost/core/types"
	"supplier-cost/internal/errors"
)

// CSVSink writes combination.csv (product, supplier pairs) and
// summary.csv (per-supplier totals) into a directory.
type CSVSink struct {
	dir string
}

// NewCSVSink creates a sink writing into dir
func NewCSVSink(dir string) *CSVSink {
	return &CSVSink{dir: dir}
}

// Publish writes both result files
func (s *CSVSink) Publish(ctx context.Context, pairs []types.Pair, summaries []cost.Breakdown) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.Resource("creating output dir", err)
	}

	combination := [][]string{{"product_id", "supplier"}}
	for _, p := range pairs {
		combination = append(combination, []string{p.ProductID, p.Supplier})
	}
	if err := s.write("combination.csv", combination); err != nil {
		return err
	}

	summary := [][]string{{"supplier", "weight", "net", "gross", "shipping", "packaging"}}
	for _, b := range summaries {
		summary = append(summary, []string{
			b.Supplier,
			b.Weight.String(),
			b.Net.String(),
			b.Gross.String(),
			b.Shipping.String(),
			b.Packaging.String(),
		})
	}
	return s.write("summary.csv", summary)
}

func (s *CSVSink) write(name string, rows [][]string) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return errors.Resource("creating "+name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return errors.Resource("writing "+name, err)
	}
	return nil
}
