// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package models

// Location is a recommendation query: where a tree would be planted and what kind.
type Location struct {
	City       string  `json:"city"`
	State      string  `json:"state"`
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	DiameterCM float64 `json:"diameter_cm" validate:"gte=0,lte=1000"`
	Native     bool    `json:"native"`
}

// Recommendation is one neighbour returned for a Location query.
type Recommendation struct {
	Rank       int     `json:"rank"`
	Tree       Tree    `json:"tree"`
	Distance   float64 `json:"distance"`
	Confidence float64 `json:"confidence"`
}

// CountEntry is a single value-count bucket.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CityCount is a per-city count with the state of the first matching row.
type CityCount struct {
	City  string `json:"city"`
	State string `json:"state"`
	Count int    `json:"count"`
}

// GeoRange is the coordinate bounding box of a set of trees.
type GeoRange struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Distribution summarizes where a species occurs.
type Distribution struct {
	Species    string      `json:"species"`
	MatchCount int         `json:"match_count"`
	TopCities  []CityCount `json:"top_cities"`
	// Range is nil when the dataset has no coordinate columns.
	Range *GeoRange `json:"range,omitempty"`
}

// ShareEntry is a count with its percentage of the whole dataset.
type ShareEntry struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Overview holds dataset summary statistics.
// Sections whose source column is absent are left empty and flagged false.
type Overview struct {
	TotalRecords int `json:"total_records"`

	HasSpecies    bool         `json:"has_species"`
	UniqueSpecies int          `json:"unique_species"`
	TopSpecies    []ShareEntry `json:"top_species"`
	HasCities     bool         `json:"has_cities"`
	UniqueCities  int          `json:"unique_cities"`
	TopCities     []CountEntry `json:"top_cities"`
	HasNative     bool         `json:"has_native"`
	NativeCounts  []ShareEntry `json:"native_counts"`
}

// ClassifierInfo is metadata read from the optional image classifier.
type ClassifierInfo struct {
	Name          string  `json:"name"`
	ModelType     string  `json:"model_type"`
	InputShape    []int   `json:"input_shape"`
	OutputClasses int     `json:"output_classes"`
	TotalParams   int64   `json:"total_params"`
	FileSizeMB    float64 `json:"file_size_mb"`
}
