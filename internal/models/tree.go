// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package models

// Tree is a single tree observation from the tabular dataset.
// The db and json tags match the column names of the source dataset.
type Tree struct {
	CommonName     string  `json:"common_name" db:"common_name"`
	ScientificName string  `json:"scientific_name" db:"scientific_name"`
	City           string  `json:"city" db:"city"`
	State          string  `json:"state" db:"state"`
	Latitude       float64 `json:"latitude_coordinate" db:"latitude_coordinate"`
	Longitude      float64 `json:"longitude_coordinate" db:"longitude_coordinate"`
	DiameterCM     float64 `json:"diameter_breast_height_CM" db:"diameter_breast_height_CM"`
	Native         bool    `json:"native" db:"native"`
}

// NativeLabel returns "Native" or "Non-native".
func (t *Tree) NativeLabel() string {
	return NativeLabel(t.Native)
}

// NativeLabel returns the display label for a native flag.
func NativeLabel(native bool) string {
	if native {
		return "Native"
	}
	return "Non-native"
}

// Dataset column names.
const (
	ColCommonName     = "common_name"
	ColScientificName = "scientific_name"
	ColCity           = "city"
	ColState          = "state"
	ColLatitude       = "latitude_coordinate"
	ColLongitude      = "longitude_coordinate"
	ColDiameter       = "diameter_breast_height_CM"
	ColNative         = "native"
)

// Columns lists the dataset columns in file order.
var Columns = []string{
	ColCommonName,
	ColScientificName,
	ColCity,
	ColState,
	ColLatitude,
	ColLongitude,
	ColDiameter,
	ColNative,
}
