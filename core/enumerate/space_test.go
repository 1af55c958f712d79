package enumerate

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"supplier-cost/core/catalog"
	"supplier-cost/core/types"
)

func record(id string) types.ProductRecord {
	return types.ProductRecord{
		ID:      id,
		Amount:  decimal.NewFromInt(1),
		VATRate: types.Unknown(),
		Weight:  types.Unknown(),
	}
}

// fixtureIndex: P1 sourceable from D1,D2,D3; P2 from D1,D2; P3 from D3.
// Space size = 3 * 2 * 1 = 6.
func fixtureIndex() *catalog.Index {
	index := catalog.NewIndex()
	index.Add("D1", record("P1"))
	index.Add("D2", record("P1"))
	index.Add("D3", record("P1"))
	index.Add("D1", record("P2"))
	index.Add("D2", record("P2"))
	index.Add("D3", record("P3"))
	return index
}

func TestBuildSpaceSize(t *testing.T) {
	space, unsourceable := Build(fixtureIndex(), nil)
	if len(unsourceable) != 0 {
		t.Fatalf("unexpected unsourceable products: %v", unsourceable)
	}
	if got := space.Size(); got != 6 {
		t.Errorf("Size() = %d, want 6", got)
	}
}

func TestCursorProducesDistinctCoveringTuples(t *testing.T) {
	space, _ := Build(fixtureIndex(), nil)

	seen := make(map[string]bool)
	cursor := space.Cursor()
	count := 0
	for {
		tuple, ok := cursor.Next()
		if !ok {
			break
		}
		count++

		key := fmt.Sprint(tuple)
		if seen[key] {
			t.Fatalf("duplicate tuple %v", tuple)
		}
		seen[key] = true

		// Every tuple must cover each required id exactly once.
		assignment := space.Assignment(tuple)
		if got := assignment.Products(); got != len(space.Products()) {
			t.Fatalf("tuple %v covers %d products, want %d", tuple, got, len(space.Products()))
		}
		covered := make(map[string]int)
		for _, ids := range assignment {
			for _, id := range ids {
				covered[id]++
			}
		}
		for _, id := range space.Products() {
			if covered[id] != 1 {
				t.Fatalf("tuple %v covers %s %d times", tuple, id, covered[id])
			}
		}
	}

	if count != 6 {
		t.Errorf("cursor produced %d tuples, want 6", count)
	}
}

func TestCursorIsRestartable(t *testing.T) {
	space, _ := Build(fixtureIndex(), nil)

	collect := func() []string {
		var out []string
		c := space.Cursor()
		for {
			tuple, ok := c.Next()
			if !ok {
				return out
			}
			out = append(out, fmt.Sprint(tuple))
		}
	}

	first := collect()
	second := collect()
	if len(first) != len(second) {
		t.Fatalf("restart changed length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("restart changed tuple %d: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestBuildExcludesUnsourceableProducts(t *testing.T) {
	space, unsourceable := Build(fixtureIndex(), []string{"P1", "P2", "P3", "MISSING"})
	if len(unsourceable) != 1 || unsourceable[0] != "MISSING" {
		t.Fatalf("unsourceable = %v, want [MISSING]", unsourceable)
	}
	if got := len(space.Products()); got != 3 {
		t.Errorf("space kept %d products, want 3", got)
	}
	if space.Size() != 6 {
		t.Errorf("Size() = %d, want 6", space.Size())
	}
}

func TestEmptySpace(t *testing.T) {
	space, _ := Build(catalog.NewIndex(), nil)
	if !space.Empty() {
		t.Fatal("expected empty space")
	}
	if space.Size() != 0 {
		t.Errorf("Size() = %d, want 0", space.Size())
	}
	if _, ok := space.Cursor().Next(); ok {
		t.Error("empty space cursor must produce nothing")
	}
}
