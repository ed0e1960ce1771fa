// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tomtom215/arboretum/internal/models"
)

// ErrMissingColumn is returned when an operation needs a column the source
// dataset does not have.
var ErrMissingColumn = errors.New("dataset: missing column")

// Table is an in-memory, read-only set of tree rows together with the
// columns the source actually provided. Fields of absent columns hold zero
// values in every row.
type Table struct {
	rows    []models.Tree
	columns map[string]bool
}

// NewTable builds a table from rows. With no columns listed, every dataset
// column is treated as present.
func NewTable(rows []models.Tree, columns ...string) *Table {
	if len(columns) == 0 {
		columns = models.Columns
	}
	cols := make(map[string]bool, len(columns))
	for _, c := range columns {
		cols[c] = true
	}
	return &Table{rows: rows, columns: cols}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row at position i.
func (t *Table) Row(i int) (models.Tree, error) {
	if i < 0 || i >= len(t.rows) {
		return models.Tree{}, fmt.Errorf("row %d out of range [0, %d)", i, len(t.rows))
	}
	return t.rows[i], nil
}

// Rows returns the underlying rows. Callers must not modify them.
func (t *Table) Rows() []models.Tree {
	return t.rows
}

// HasColumn reports whether the source provided the named column.
func (t *Table) HasColumn(name string) bool {
	return t.columns[name]
}

// Columns returns the present columns in dataset order.
func (t *Table) Columns() []string {
	cols := make([]string, 0, len(t.columns))
	for _, c := range models.Columns {
		if t.columns[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// HasCoordinates reports whether both coordinate columns are present.
func (t *Table) HasCoordinates() bool {
	return t.columns[models.ColLatitude] && t.columns[models.ColLongitude]
}

// HasCommonName reports whether the common_name column is present.
func (t *Table) HasCommonName() bool { return t.columns[models.ColCommonName] }

// HasCity reports whether the city column is present.
func (t *Table) HasCity() bool { return t.columns[models.ColCity] }

// HasNative reports whether the native column is present.
func (t *Table) HasNative() bool { return t.columns[models.ColNative] }

// stringColumn returns an accessor for a text column, or nil when the
// column cannot be counted.
func stringColumn(name string) func(*models.Tree) string {
	switch name {
	case models.ColCommonName:
		return func(r *models.Tree) string { return r.CommonName }
	case models.ColScientificName:
		return func(r *models.Tree) string { return r.ScientificName }
	case models.ColCity:
		return func(r *models.Tree) string { return r.City }
	case models.ColState:
		return func(r *models.Tree) string { return r.State }
	case models.ColNative:
		return func(r *models.Tree) string { return models.NativeLabel(r.Native) }
	default:
		return nil
	}
}

// ValueCounts counts distinct non-empty values of a text column, ordered by
// count descending then name ascending. n <= 0 returns every value.
func (t *Table) ValueCounts(column string, n int) ([]models.CountEntry, error) {
	get, err := t.accessor(column)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for i := range t.rows {
		if v := get(&t.rows[i]); v != "" {
			counts[v]++
		}
	}

	entries := make([]models.CountEntry, 0, len(counts))
	for name, c := range counts {
		entries = append(entries, models.CountEntry{Name: name, Count: c})
	}
	sortCounts(entries)

	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries, nil
}

// NUnique returns the number of distinct non-empty values of a text column.
func (t *Table) NUnique(column string) (int, error) {
	get, err := t.accessor(column)
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{})
	for i := range t.rows {
		if v := get(&t.rows[i]); v != "" {
			seen[v] = struct{}{}
		}
	}
	return len(seen), nil
}

func (t *Table) accessor(column string) (func(*models.Tree) string, error) {
	if !t.columns[column] {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, column)
	}
	get := stringColumn(column)
	if get == nil {
		return nil, fmt.Errorf("column %s is not a text column", column)
	}
	return get, nil
}

// FilterSpecies returns the rows whose common name contains name,
// case-insensitively. Rows with an empty common name never match.
func (t *Table) FilterSpecies(name string) (*Table, error) {
	if !t.HasCommonName() {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, models.ColCommonName)
	}

	needle := strings.ToLower(name)
	var matched []models.Tree
	for i := range t.rows {
		cn := t.rows[i].CommonName
		if cn == "" {
			continue
		}
		if strings.Contains(strings.ToLower(cn), needle) {
			matched = append(matched, t.rows[i])
		}
	}

	return &Table{rows: matched, columns: t.columns}, nil
}

func sortCounts(entries []models.CountEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
}
