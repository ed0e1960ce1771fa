// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/tomtom215/arboretum/internal/models"
)

func TestWriteCSV(t *testing.T) {
	rows := []models.Tree{
		{CommonName: "Red Oak", ScientificName: "Quercus rubra", City: "Louisville", State: "Kentucky", Latitude: 38.2527, Longitude: -85.7585, DiameterCM: 25.4, Native: true},
		{CommonName: "Tree, \"quoted\"", City: "Denver", Latitude: math.NaN(), Longitude: math.NaN(), DiameterCM: math.NaN()},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	wantHeader := "common_name,scientific_name,city,state,latitude_coordinate,longitude_coordinate,diameter_breast_height_CM,native"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if lines[1] != "Red Oak,Quercus rubra,Louisville,Kentucky,38.2527,-85.7585,25.4,1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != `"Tree, ""quoted""",,Denver,,,,,0` {
		t.Errorf("row 2 = %q", lines[2])
	}
}
