// Package types - Assignments
package types

import "sort"

// Assignment allocates product ids to suppliers. Invariant: the union of
// all suppliers' id sets equals the required id set exactly, with no id
// repeated across suppliers.
type Assignment map[string][]string

// Pair is one (product, supplier) row of a published assignment
type Pair struct {
	ProductID string `json:"product_id"`
	Supplier  string `json:"supplier"`
}

// Products returns the number of assigned product ids
func (a Assignment) Products() int {
	n := 0
	for _, ids := range a {
		n += len(ids)
	}
	return n
}

// Suppliers returns the supplier names in sorted order
func (a Assignment) Suppliers() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pairs flattens the assignment into an ordered (product, supplier)
// sequence: suppliers sorted by name, ids in assignment order.
func (a Assignment) Pairs() []Pair {
	pairs := make([]Pair, 0, a.Products())
	for _, supplier := range a.Suppliers() {
		for _, id := range a[supplier] {
			pairs = append(pairs, Pair{ProductID: id, Supplier: supplier})
		}
	}
	return pairs
}
