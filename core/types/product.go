// Package types - Product and tier records
package types

import "github.com/shopspring/decimal"

// ProductRecord is one product row in a supplier's catalog.
// Immutable once loaded.
type ProductRecord struct {
	// ID uniquely identifies the product within a supplier's catalog
	ID string `json:"id"`

	// Amount is the pre-tax price
	Amount decimal.Decimal `json:"amount"`

	// VATRate is the tax rate in percent, possibly Unknown
	VATRate Value `json:"vat_rate"`

	// Weight is the total weight in kg, possibly Unknown
	Weight Value `json:"weight"`
}

// ConditionTier is one shipping/packaging rule of a supplier. A tier
// matches an order when both its weight and amount predicates hold
// against the order's computed totals.
type ConditionTier struct {
	// Supplier is the owning supplier
	Supplier string `json:"supplier"`

	// Weight is the predicate on total weight
	Weight Value `json:"weight"`

	// Amount is the predicate on the net (pre-tax) amount
	Amount Value `json:"amount"`

	// Shipping is the shipping surcharge, possibly Unknown
	Shipping Value `json:"shipping"`

	// Packaging is the packaging surcharge, possibly Unknown
	Packaging Value `json:"packaging"`
}

// TierTable maps a supplier to its condition tiers
type TierTable map[string][]ConditionTier
