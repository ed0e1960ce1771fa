// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/models"
)

// PostgresLoader reads the dataset from a Postgres table.
type PostgresLoader struct {
	url   string
	table string
}

// NewPostgresLoader creates a loader for table at the given connection URL.
// The table name must already be validated as an identifier.
func NewPostgresLoader(url, table string) *PostgresLoader {
	return &PostgresLoader{url: url, table: table}
}

// Source returns the table name; the URL may carry credentials.
func (l *PostgresLoader) Source() string {
	return "postgres table " + l.table
}

// qualifiedTable quotes each part of a possibly schema-qualified name.
func qualifiedTable(table string) string {
	parts := strings.Split(table, ".")
	for i, p := range parts {
		parts[i] = quoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// Load reads every row of the table.
func (l *PostgresLoader) Load(ctx context.Context) (*Table, error) {
	start := time.Now()

	db, err := sqlx.ConnectContext(ctx, "postgres", l.url)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	defer func() { _ = db.Close() }() //nolint:errcheck // read-only session

	table := qualifiedTable(l.table)

	probe, err := db.QueryxContext(ctx, "SELECT * FROM "+table+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", l.table, err)
	}
	discovered, err := probe.Columns()
	_ = probe.Close() //nolint:errcheck // probe cursor holds no rows
	if err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", l.table, err)
	}

	present := knownColumns(discovered)
	if len(present) == 0 {
		return nil, fmt.Errorf("table %s has none of the expected columns %v", l.table, models.Columns)
	}

	query := "SELECT\n\t" + selectList(present, postgresDialect) + "\nFROM " + table

	var rows []models.Tree
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("read table %s: %w", l.table, err)
	}

	logging.Ctx(ctx).Debug().
		Str("table", l.table).
		Int("rows", len(rows)).
		Strs("columns", presentList(present)).
		Dur("duration", time.Since(start)).
		Msg("Loaded dataset from Postgres")

	return NewTable(rows, presentList(present)...), nil
}
