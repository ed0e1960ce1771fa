// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/models"
)

// DuckDBLoader reads a CSV, Parquet or JSON file through an in-memory DuckDB
// instance. The file format is chosen from the extension.
type DuckDBLoader struct {
	path string
}

// NewDuckDBLoader creates a loader for the file at path.
func NewDuckDBLoader(path string) *DuckDBLoader {
	return &DuckDBLoader{path: path}
}

// Source returns the dataset file path.
func (l *DuckDBLoader) Source() string {
	return l.path
}

// tableFunction returns the DuckDB table function call that scans path.
func tableFunction(path string) (string, error) {
	lit := "'" + strings.ReplaceAll(path, "'", "''") + "'"

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return "read_csv_auto(" + lit + ", header = true)", nil
	case ".parquet", ".pq":
		return "read_parquet(" + lit + ")", nil
	case ".json", ".jsonl", ".ndjson":
		return "read_json_auto(" + lit + ")", nil
	default:
		return "", fmt.Errorf("unsupported dataset format %q (want .csv, .parquet or .json)", filepath.Ext(path))
	}
}

// Load reads every row of the file.
func (l *DuckDBLoader) Load(ctx context.Context) (*Table, error) {
	start := time.Now()

	if _, err := os.Stat(l.path); err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	source, err := tableFunction(l.path)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() { _ = db.Close() }() //nolint:errcheck // in-memory database

	discovered, err := describeColumns(ctx, db, source)
	if err != nil {
		return nil, err
	}
	present := knownColumns(discovered)
	if len(present) == 0 {
		return nil, fmt.Errorf("dataset %s has none of the expected columns %v", l.path, models.Columns)
	}

	query := "SELECT\n\t" + selectList(present, duckdbDialect) + "\nFROM " + source

	var rows []models.Tree
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", l.path, err)
	}

	logging.Ctx(ctx).Debug().
		Str("path", l.path).
		Int("rows", len(rows)).
		Strs("columns", presentList(present)).
		Dur("duration", time.Since(start)).
		Msg("Loaded dataset with DuckDB")

	return NewTable(rows, presentList(present)...), nil
}

// describeColumns returns the column names of a table function, using
// DESCRIBE so the file is not scanned.
func describeColumns(ctx context.Context, db *sqlx.DB, source string) ([]string, error) {
	rows, err := db.QueryxContext(ctx, "DESCRIBE SELECT * FROM "+source)
	if err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	defer func() { _ = rows.Close() }() //nolint:errcheck // read-only cursor

	var names []string
	for rows.Next() {
		row, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("scan column description: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		// column_name is the first DESCRIBE column
		if name, ok := row[0].(string); ok {
			names = append(names, name)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("describe dataset: %w", err)
	}
	return names, nil
}
