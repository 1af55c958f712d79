// Package catalog - Per-supplier product index
//
// The index is built once per run from the data source and treated as
// read-only for the remainder: it is shared across search workers
// without locking.
package catalog

import (
	"sort"

	"supplier-cost/core/types"
)

// Index maps supplier → product id → record for O(1) lookup
type Index struct {
	suppliers map[string]map[string]types.ProductRecord
	order     []string
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{suppliers: make(map[string]map[string]types.ProductRecord)}
}

// Add inserts a product record into a supplier's catalog. A duplicate id
// within the same supplier overwrites the earlier row, matching the
// last-row-wins behavior of indexed tabular imports.
func (x *Index) Add(supplier string, rec types.ProductRecord) {
	cat, ok := x.suppliers[supplier]
	if !ok {
		cat = make(map[string]types.ProductRecord)
		x.suppliers[supplier] = cat
		x.order = append(x.order, supplier)
		sort.Strings(x.order)
	}
	cat[rec.ID] = rec
}

// Suppliers returns supplier names in sorted order
func (x *Index) Suppliers() []string {
	return x.order
}

// Lookup fetches a record from a supplier's catalog
func (x *Index) Lookup(supplier, id string) (types.ProductRecord, bool) {
	rec, ok := x.suppliers[supplier][id]
	return rec, ok
}

// ProductIDs returns the sorted union of ids across all catalogs.
// This is the required-products list.
func (x *Index) ProductIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, cat := range x.suppliers {
		for id := range cat {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// CandidateSuppliers returns the suppliers whose catalog contains the
// given id, in sorted supplier order.
func (x *Index) CandidateSuppliers(id string) []string {
	var names []string
	for _, supplier := range x.order {
		if _, ok := x.suppliers[supplier][id]; ok {
			names = append(names, supplier)
		}
	}
	return names
}

// Len returns the number of suppliers
func (x *Index) Len() int {
	return len(x.order)
}
