// Package catalog - Data source contract
package catalog

import "context"

// Group is one named data group of the source and whether it is enabled
type Group struct {
	Name    string
	Include bool
}

// RawProduct is one unparsed product row. Field values are free-form
// text and go through normalization before entering the catalog.
type RawProduct struct {
	ID     string
	Amount string
	VAT    string
	Weight string
}

// RawTier is one unparsed condition tier row
type RawTier struct {
	Supplier  string
	Weight    string
	Amount    string
	Shipping  string
	Packaging string
}

// Source supplies raw tabular rows for catalog construction. Each data
// group corresponds to one supplier's catalog; tiers come from a single
// flat table keyed by supplier.
type Source interface {
	// Groups lists the data groups the source knows about
	Groups(ctx context.Context) ([]Group, error)

	// Products returns the ordered product rows of one group
	Products(ctx context.Context, group string) ([]RawProduct, error)

	// Tiers returns the flat condition tier table
	Tiers(ctx context.Context) ([]RawTier, error)
}
