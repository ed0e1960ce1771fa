// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/models"
)

// Loader reads the tree dataset into memory.
type Loader interface {
	Load(ctx context.Context) (*Table, error)
	// Source describes where rows are read from, for log and console output.
	Source() string
}

// NewLoader picks the Postgres loader when a Postgres URL is configured and
// the DuckDB file loader otherwise.
//
//nolint:gocritic // config section passed by value
func NewLoader(cfg config.DatasetConfig) Loader {
	if cfg.PostgresURL != "" {
		return NewPostgresLoader(cfg.PostgresURL, cfg.PostgresTable)
	}
	return NewDuckDBLoader(cfg.Path)
}

// sqlDialect holds the type names that differ between DuckDB and Postgres.
type sqlDialect struct {
	text   string
	double string
}

var (
	duckdbDialect   = sqlDialect{text: "VARCHAR", double: "DOUBLE"}
	postgresDialect = sqlDialect{text: "VARCHAR", double: "DOUBLE PRECISION"}
)

// nativeTrue lists the lowercased spellings treated as a native tree.
var nativeTrue = []string{"1", "1.0", "true", "t", "yes", "y", "native"}

// quoteIdent double-quotes a column identifier. Column names are mixed case
// (diameter_breast_height_CM), so every reference is quoted.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// selectList builds the projection that normalizes the present columns to
// the Tree field types and fills absent columns with typed defaults. Missing
// text becomes '' and missing numbers become NaN.
func selectList(present map[string]bool, d sqlDialect) string {
	exprs := make([]string, 0, len(models.Columns))
	nan := fmt.Sprintf("CAST('NaN' AS %s)", d.double)

	for _, col := range models.Columns {
		q := quoteIdent(col)
		var expr string
		switch col {
		case models.ColLatitude, models.ColLongitude, models.ColDiameter:
			if present[col] {
				expr = fmt.Sprintf("COALESCE(CAST(%s AS %s), %s)", q, d.double, nan)
			} else {
				expr = nan
			}
		case models.ColNative:
			if present[col] {
				expr = fmt.Sprintf("COALESCE(LOWER(TRIM(CAST(%s AS %s))) IN ('%s'), FALSE)",
					q, d.text, strings.Join(nativeTrue, "', '"))
			} else {
				expr = "FALSE"
			}
		default:
			if present[col] {
				expr = fmt.Sprintf("COALESCE(TRIM(CAST(%s AS %s)), '')", q, d.text)
			} else {
				expr = "''"
			}
		}
		exprs = append(exprs, expr+" AS "+q)
	}

	return strings.Join(exprs, ",\n\t")
}

// knownColumns filters discovered column names down to the dataset schema.
func knownColumns(discovered []string) map[string]bool {
	found := make(map[string]bool, len(discovered))
	for _, name := range discovered {
		found[name] = true
	}

	present := make(map[string]bool)
	for _, col := range models.Columns {
		if found[col] {
			present[col] = true
		}
	}
	return present
}

func presentList(present map[string]bool) []string {
	cols := make([]string, 0, len(present))
	for _, c := range models.Columns {
		if present[c] {
			cols = append(cols, c)
		}
	}
	return cols
}
