// Package cost - Assignment cost evaluation
//
// The model is deterministic and side-effect free: one Assignment in,
// one grand total plus per-supplier breakdown out. It holds only
// read-only references to the catalog index and tier table, so a single
// model is shared across all search workers.
package cost

import (
	"github.com/shopspring/decimal"

	"supplier-cost/core/catalog"
	"supplier-cost/core/types"
	"supplier-cost/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Breakdown is the per-supplier cost detail of one evaluation.
// Ephemeral: recomputed for every candidate, only the winner's survives.
type Breakdown struct {
	// Supplier is the supplier name
	Supplier string `json:"supplier"`

	// Net is the pre-tax amount of the assigned products
	Net decimal.Decimal `json:"net"`

	// Gross is the tax-inclusive amount
	Gross decimal.Decimal `json:"gross"`

	// Weight is the total weight in kg (Unknown weights count as zero)
	Weight decimal.Decimal `json:"weight"`

	// Shipping is the matched shipping surcharge
	Shipping decimal.Decimal `json:"shipping"`

	// Packaging is the matched packaging surcharge
	Packaging decimal.Decimal `json:"packaging"`
}

// Total returns gross + shipping + packaging
func (b Breakdown) Total() decimal.Decimal {
	return b.Gross.Add(b.Shipping).Add(b.Packaging)
}

// Model evaluates assignments against a catalog and tier table
type Model struct {
	index *catalog.Index
	tiers types.TierTable
}

// NewModel creates a cost model over read-only catalog data
func NewModel(index *catalog.Index, tiers types.TierTable) *Model {
	return &Model{index: index, tiers: tiers}
}

// Evaluate computes the total landed cost of one assignment and the
// per-supplier breakdown, suppliers in sorted order.
//
// A product id missing from its supplier's catalog is a LookupError: it
// signals data desynchronization and is fatal to this evaluation, not
// to the run.
func (m *Model) Evaluate(a types.Assignment) (decimal.Decimal, []Breakdown, error) {
	total := decimal.Zero
	breakdowns := make([]Breakdown, 0, len(a))

	for _, supplier := range a.Suppliers() {
		b, err := m.evaluateSupplier(supplier, a[supplier])
		if err != nil {
			return decimal.Zero, nil, err
		}
		breakdowns = append(breakdowns, b)
		total = total.Add(b.Total())
	}

	return total, breakdowns, nil
}

func (m *Model) evaluateSupplier(supplier string, ids []string) (Breakdown, error) {
	b := Breakdown{Supplier: supplier}

	for _, id := range ids {
		rec, ok := m.index.Lookup(supplier, id)
		if !ok {
			return Breakdown{}, errors.Lookup(supplier, id)
		}
		b.Net = b.Net.Add(rec.Amount)
		vat := rec.VATRate.OrZero()
		b.Gross = b.Gross.Add(rec.Amount.Mul(decimal.NewFromInt(1).Add(vat.Div(hundred))))
		b.Weight = b.Weight.Add(rec.Weight.OrZero())
	}

	// Tiers only apply to suppliers that actually sell something.
	if b.Net.IsPositive() {
		b.Shipping, b.Packaging = m.matchTiers(supplier, b.Weight, b.Net)
	}

	return b, nil
}

// matchTiers scans every tier of the supplier. The shipping and
// packaging surcharges are each maximized independently across all
// matching tiers; they are not taken from a single best tier.
func (m *Model) matchTiers(supplier string, weight, net decimal.Decimal) (shipping, packaging decimal.Decimal) {
	for _, tier := range m.tiers[supplier] {
		if !tier.Weight.Matches(weight) || !tier.Amount.Matches(net) {
			continue
		}
		if s := tier.Shipping.OrZero(); s.GreaterThan(shipping) {
			shipping = s
		}
		if p := tier.Packaging.OrZero(); p.GreaterThan(packaging) {
			packaging = p
		}
	}
	return shipping, packaging
}
