package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"supplier-cost/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "settings.csv",
		"group,include\nD1,TRUE\nD2,false\n")
	writeFile(t, dir, "D1.csv",
		"ID,Amount,VAT,Weight\nP1,\"10,50 €\",22%,\"1,2\"\nP2,9\n")
	writeFile(t, dir, "conditions.csv",
		"supplier,weight,amount,shipping,packaging\nD1,<2,<20,5,1\n")
	return dir
}

func TestGroups(t *testing.T) {
	a := NewCSVAdapter(fixtureDir(t))
	groups, err := a.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "D1" || !groups[0].Include {
		t.Errorf("group 0 = %+v, want D1 included", groups[0])
	}
	if groups[1].Name != "D2" || groups[1].Include {
		t.Errorf("group 1 = %+v, want D2 excluded", groups[1])
	}
}

func TestProducts(t *testing.T) {
	a := NewCSVAdapter(fixtureDir(t))
	products, err := a.Products(context.Background(), "D1")
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	if products[0].ID != "P1" || products[0].Amount != "10,50 €" || products[0].VAT != "22%" {
		t.Errorf("row 0 = %+v, raw cells must pass through untouched", products[0])
	}

	// The short row is padded with empty cells for the absent columns.
	if products[1].ID != "P2" || products[1].Amount != "9" {
		t.Errorf("row 1 = %+v", products[1])
	}
	if products[1].VAT != "" || products[1].Weight != "" {
		t.Errorf("short row must yield empty cells, got %+v", products[1])
	}
}

func TestTiers(t *testing.T) {
	a := NewCSVAdapter(fixtureDir(t))
	tiers, err := a.Tiers(context.Background())
	if err != nil {
		t.Fatalf("Tiers: %v", err)
	}
	if len(tiers) != 1 {
		t.Fatalf("got %d tiers, want 1", len(tiers))
	}
	tier := tiers[0]
	if tier.Supplier != "D1" || tier.Weight != "<2" || tier.Amount != "<20" ||
		tier.Shipping != "5" || tier.Packaging != "1" {
		t.Errorf("tier = %+v", tier)
	}
}

func TestHeaderMatchingIsCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.csv", "GROUP,Include\nD1,true\n")
	writeFile(t, dir, "D1.csv", "Id,AMOUNT\nP1,10\n")

	a := NewCSVAdapter(dir)
	if _, err := a.Groups(context.Background()); err != nil {
		t.Errorf("Groups with mixed-case header: %v", err)
	}
	products, err := a.Products(context.Background(), "D1")
	if err != nil {
		t.Fatalf("Products with mixed-case header: %v", err)
	}
	if products[0].ID != "P1" || products[0].Amount != "10" {
		t.Errorf("row = %+v", products[0])
	}
}

func TestMissingFileIsDataError(t *testing.T) {
	a := NewCSVAdapter(t.TempDir())
	_, err := a.Groups(context.Background())
	if err == nil || !errors.IsType(err, errors.TypeData) {
		t.Fatalf("error = %v, want DATA_ERROR", err)
	}
}

func TestMissingRequiredColumnIsDataError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.csv", "name,enabled\nD1,true\n")

	a := NewCSVAdapter(dir)
	_, err := a.Groups(context.Background())
	if err == nil || !errors.IsType(err, errors.TypeData) {
		t.Fatalf("error = %v, want DATA_ERROR for missing columns", err)
	}
}
