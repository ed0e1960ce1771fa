// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tomtom215/arboretum/internal/models"
)

// WriteCSV writes rows in the dataset schema with a header line. Missing
// numbers are written as empty fields and native as 1 or 0, the same
// encoding DuckDB reads back.
func WriteCSV(w io.Writer, rows []models.Tree) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(models.Columns))
	for i := range rows {
		r := &rows[i]
		record[0] = r.CommonName
		record[1] = r.ScientificName
		record[2] = r.City
		record[3] = r.State
		record[4] = formatFloat(r.Latitude)
		record[5] = formatFloat(r.Longitude)
		record[6] = formatFloat(r.DiameterCM)
		record[7] = "0"
		if r.Native {
			record[7] = "1"
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// WriteCSVFile writes rows to path, replacing any existing file.
func WriteCSVFile(path string, rows []models.Tree) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if mkErr := os.MkdirAll(dir, 0o750); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
	}

	f, err := os.Create(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return WriteCSV(f, rows)
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
