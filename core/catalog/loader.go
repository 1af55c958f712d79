// Package catalog - Index construction from a data source
package catalog

import (
	"context"

	"go.uber.org/zap"

	"supplier-cost/core/normalize"
	"supplier-cost/core/types"
	"supplier-cost/internal/errors"
	"supplier-cost/internal/logging"
)

// Load builds the catalog index and tier table from a source.
//
// Groups follow the source's own include flags; overrides (from
// configuration) win where present. Malformed rows and unreadable groups
// are excluded with a warning and the run continues; the load fails only
// when no enabled group could be read at all. Tier rows of suppliers
// that were not loaded are dropped.
func Load(ctx context.Context, src Source, overrides map[string]bool) (*Index, types.TierTable, error) {
	groups, err := src.Groups(ctx)
	if err != nil {
		return nil, nil, err
	}

	index := NewIndex()
	loaded := make(map[string]bool)
	attempted := 0

	for _, g := range groups {
		include := g.Include
		if v, ok := overrides[g.Name]; ok {
			include = v
		}
		if !include {
			continue
		}
		attempted++

		rows, err := src.Products(ctx, g.Name)
		if err != nil {
			logging.Warn("data group unreadable, skipped",
				zap.String("group", g.Name),
				zap.Error(err))
			continue
		}

		kept := 0
		for _, row := range rows {
			rec, ok := buildRecord(g.Name, row)
			if !ok {
				continue
			}
			index.Add(g.Name, rec)
			kept++
		}
		loaded[g.Name] = true
		logging.Info("loaded data group",
			zap.String("group", g.Name),
			zap.Int("products", kept),
			zap.Int("rows", len(rows)))
	}

	if attempted > 0 && len(loaded) == 0 {
		return nil, nil, errors.Data("no enabled data group could be read")
	}

	tierRows, err := src.Tiers(ctx)
	if err != nil {
		logging.Warn("condition tiers unreadable, proceeding without surcharges",
			zap.Error(err))
		tierRows = nil
	}

	tiers := make(types.TierTable)
	for _, row := range tierRows {
		if !loaded[row.Supplier] {
			continue
		}
		tiers[row.Supplier] = append(tiers[row.Supplier], types.ConditionTier{
			Supplier:  row.Supplier,
			Weight:    normalizeField(row.Supplier, "weight", row.Weight),
			Amount:    normalizeField(row.Supplier, "amount", row.Amount),
			Shipping:  normalizeField(row.Supplier, "shipping", row.Shipping),
			Packaging: normalizeField(row.Supplier, "packaging", row.Packaging),
		})
	}

	return index, tiers, nil
}

// buildRecord normalizes one product row. Rows without an id, or whose
// amount does not normalize to a plain number, are data errors: excluded
// with a warning, never fatal.
func buildRecord(group string, row RawProduct) (types.ProductRecord, bool) {
	if row.ID == "" {
		logging.Warn("skipping product row without id", zap.String("group", group))
		return types.ProductRecord{}, false
	}

	amount := normalizeField(group, "amount", row.Amount)
	if amount.Kind != types.KindExact {
		logging.Warn("skipping product row with unusable amount",
			zap.String("group", group),
			zap.String("id", row.ID),
			zap.String("amount", row.Amount))
		return types.ProductRecord{}, false
	}

	return types.ProductRecord{
		ID:      row.ID,
		Amount:  amount.Num,
		VATRate: normalizeField(group, "vat", row.VAT),
		Weight:  normalizeField(group, "weight", row.Weight),
	}, true
}

func normalizeField(owner, field, raw string) types.Value {
	v, err := normalize.Token(raw)
	if err != nil {
		logging.Warn("token recovered to unknown",
			zap.String("owner", owner),
			zap.String("field", field),
			zap.Error(err))
	}
	return v
}
