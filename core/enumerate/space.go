// Package enumerate - Candidate space enumeration
//
// The candidate space is the Cartesian product of every required
// product's candidate-supplier list. It is produced lazily by an
// odometer cursor over supplier indices, so spaces of many millions of
// tuples never materialize at once.
package enumerate

import (
	"math"

	"supplier-cost/core/catalog"
	"supplier-cost/core/types"
)

// Tuple is one candidate: choices[i] is the index into the candidate
// supplier list of product i, in the space's fixed product order.
type Tuple []int

// Space is the candidate assignment space for a catalog index
type Space struct {
	products []string
	choices  [][]string
}

// Build computes per-product candidate supplier lists in a fixed
// (sorted) product order. When required is nil, the required list is
// the union of ids across all catalogs. Products with no capable
// supplier are excluded from the space and returned as unsourceable.
func Build(index *catalog.Index, required []string) (*Space, []string) {
	if required == nil {
		required = index.ProductIDs()
	}

	s := &Space{}
	var unsourceable []string
	for _, id := range required {
		candidates := index.CandidateSuppliers(id)
		if len(candidates) == 0 {
			unsourceable = append(unsourceable, id)
			continue
		}
		s.products = append(s.products, id)
		s.choices = append(s.choices, candidates)
	}
	return s, unsourceable
}

// Products returns the fixed product order
func (s *Space) Products() []string {
	return s.products
}

// Candidates returns the candidate suppliers of product i
func (s *Space) Candidates(i int) []string {
	return s.choices[i]
}

// Empty reports whether the space contains no candidates
func (s *Space) Empty() bool {
	return len(s.products) == 0
}

// Size returns the number of candidate tuples, ∏ candidates per
// product, saturating at MaxUint64.
func (s *Space) Size() uint64 {
	if s.Empty() {
		return 0
	}
	size := uint64(1)
	for _, c := range s.choices {
		n := uint64(len(c))
		if size > math.MaxUint64/n {
			return math.MaxUint64
		}
		size *= n
	}
	return size
}

// Assignment groups a tuple's supplier choices into an Assignment.
// Every required product appears exactly once.
func (s *Space) Assignment(t Tuple) types.Assignment {
	a := make(types.Assignment)
	for i, choice := range t {
		supplier := s.choices[i][choice]
		a[supplier] = append(a[supplier], s.products[i])
	}
	return a
}

// Cursor returns a fresh cursor positioned at the first tuple.
// Cursors are independent: the sequence is restartable.
func (s *Space) Cursor() *Cursor {
	return &Cursor{
		space: s,
		next:  make([]int, len(s.products)),
		done:  s.Empty(),
	}
}

// Cursor lazily walks the candidate space in odometer order
type Cursor struct {
	space *Space
	next  []int
	done  bool
}

// Next returns the next tuple. The returned tuple is a copy and safe to
// retain.
func (c *Cursor) Next() (Tuple, bool) {
	if c.done {
		return nil, false
	}

	t := make(Tuple, len(c.next))
	copy(t, c.next)

	// Advance the odometer, least significant digit last.
	for i := len(c.next) - 1; i >= 0; i-- {
		c.next[i]++
		if c.next[i] < len(c.space.choices[i]) {
			return t, true
		}
		c.next[i] = 0
	}
	c.done = true
	return t, true
}
