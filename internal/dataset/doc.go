// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

/*
Package dataset loads the tabular tree dataset and answers the questions the
demo runner asks of it.

# Sources

DuckDBLoader reads a local file through an in-memory DuckDB database:

	.csv .tsv .txt        read_csv_auto
	.parquet .pq          read_parquet
	.json .jsonl .ndjson  read_json_auto

PostgresLoader reads a table with sqlx and lib/pq. NewLoader picks Postgres
when dataset.postgres_url is configured.

Both loaders discover the source columns first and project only the known
ones, so a file without, say, a native column still loads. The Table records
which columns were present and operations that need an absent column return
ErrMissingColumn. Missing text values load as "" and missing numbers as NaN.

# Queries

	t.ValueCounts("city", 5)     // top 5 cities by row count
	t.FilterSpecies("red oak")   // case-insensitive substring match
	t.Distribution("Red Oak", 10)
	t.Overview(5)

Counts are ordered by count descending and then by name, so ties are stable
across runs.
*/
package dataset
