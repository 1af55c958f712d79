// Package source provides tabular data source adapters.
//
// The CSV adapter reads a directory laid out like the original
// spreadsheet workbook: a settings table selecting data groups, one
// table per supplier's quotation, and a flat conditions table.
package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"supplier-cost/core/catalog"
	"supplier-cost/internal/errors"
)

const (
	settingsFile   = "settings.csv"
	conditionsFile = "conditions.csv"
)

// CSVAdapter implements catalog.Source over a directory of CSV files:
//
//	settings.csv    group,include
//	<GROUP>.csv     id,amount,vat,weight
//	conditions.csv  supplier,weight,amount,shipping,packaging
//
// Headers are matched case-insensitively by name, so column order is
// free.
type CSVAdapter struct {
	root string
}

// NewCSVAdapter creates an adapter rooted at dir
func NewCSVAdapter(root string) *CSVAdapter {
	return &CSVAdapter{root: root}
}

// Groups reads the settings table
func (a *CSVAdapter) Groups(ctx context.Context) ([]catalog.Group, error) {
	rows, header, err := a.read(settingsFile)
	if err != nil {
		return nil, err
	}

	name, ok1 := header["group"]
	include, ok2 := header["include"]
	if !ok1 || !ok2 {
		return nil, errors.Data(settingsFile + " must have group and include columns")
	}

	var groups []catalog.Group
	for _, row := range rows {
		groups = append(groups, catalog.Group{
			Name:    strings.TrimSpace(row[name]),
			Include: strings.EqualFold(strings.TrimSpace(row[include]), "true"),
		})
	}
	return groups, nil
}

// Products reads one group's quotation table
func (a *CSVAdapter) Products(ctx context.Context, group string) ([]catalog.RawProduct, error) {
	rows, header, err := a.read(group + ".csv")
	if err != nil {
		return nil, err
	}

	id, ok := header["id"]
	if !ok {
		return nil, errors.Data(group + ".csv must have an id column")
	}

	var products []catalog.RawProduct
	for _, row := range rows {
		products = append(products, catalog.RawProduct{
			ID:     strings.TrimSpace(row[id]),
			Amount: cell(row, header, "amount"),
			VAT:    cell(row, header, "vat"),
			Weight: cell(row, header, "weight"),
		})
	}
	return products, nil
}

// Tiers reads the flat conditions table
func (a *CSVAdapter) Tiers(ctx context.Context) ([]catalog.RawTier, error) {
	rows, header, err := a.read(conditionsFile)
	if err != nil {
		return nil, err
	}

	supplier, ok := header["supplier"]
	if !ok {
		return nil, errors.Data(conditionsFile + " must have a supplier column")
	}

	var tiers []catalog.RawTier
	for _, row := range rows {
		tiers = append(tiers, catalog.RawTier{
			Supplier:  strings.TrimSpace(row[supplier]),
			Weight:    cell(row, header, "weight"),
			Amount:    cell(row, header, "amount"),
			Shipping:  cell(row, header, "shipping"),
			Packaging: cell(row, header, "packaging"),
		})
	}
	return tiers, nil
}

// read parses one CSV file into data rows plus a name → column map
// built from the first row.
func (a *CSVAdapter) read(name string) ([][]string, map[string]int, error) {
	f, err := os.Open(filepath.Join(a.root, name))
	if err != nil {
		return nil, nil, errors.Wrapf(errors.TypeData, err, "opening %s", name)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated, short ones padded on access
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(errors.TypeData, err, "parsing %s", name)
	}
	if len(records) == 0 {
		return nil, nil, errors.Data(fmt.Sprintf("%s is empty", name))
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[strings.ToLower(strings.TrimSpace(col))] = i
	}
	return records[1:], header, nil
}

// cell fetches a named column, returning "" when the column is absent
// or the row too short (which normalizes to Unknown downstream).
func cell(row []string, header map[string]int, name string) string {
	i, ok := header[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
