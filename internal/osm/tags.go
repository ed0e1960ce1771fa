// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package osm

import (
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/arboretum/internal/models"
)

// Defaults fill in the location of nodes without address tags.
type Defaults struct {
	City  string
	State string
}

// firstTag returns the first non-empty value among keys.
func firstTag(tags map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(tags[k]); v != "" {
			return v
		}
	}
	return ""
}

// TreeFromTags maps the tags of one tree node to a dataset row. It reports
// false when the node carries neither a common nor a scientific name.
// A node with only a scientific name uses it as the common name.
func TreeFromTags(lat, lon float64, tags map[string]string, defaults Defaults) (models.Tree, bool) {
	common := firstTag(tags, "species:en", "taxon:en", "name")
	scientific := firstTag(tags, "species", "taxon")
	if common == "" {
		common = scientific
	}
	if common == "" {
		return models.Tree{}, false
	}

	city := firstTag(tags, "addr:city")
	if city == "" {
		city = defaults.City
	}
	state := firstTag(tags, "addr:state")
	if state == "" {
		state = defaults.State
	}

	return models.Tree{
		CommonName:     common,
		ScientificName: scientific,
		City:           city,
		State:          state,
		Latitude:       lat,
		Longitude:      lon,
		DiameterCM:     diameterCM(tags),
		Native:         native(tags),
	}, true
}

// diameterCM reads the trunk diameter, falling back to the circumference.
// Both default to metres; "cm", "mm" and "m" suffixes are honoured.
// It returns NaN when neither tag parses.
func diameterCM(tags map[string]string) float64 {
	if d, ok := parseLength(tags["diameter"]); ok {
		return d
	}
	if c, ok := parseLength(tags["circumference"]); ok {
		return c / math.Pi
	}
	return math.NaN()
}

// parseLength parses a positive length such as "0.45", "45 cm" or "450mm"
// and returns it in centimetres.
func parseLength(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	scale := 100.0
	switch {
	case strings.HasSuffix(s, "cm"):
		s, scale = strings.TrimSuffix(s, "cm"), 1
	case strings.HasSuffix(s, "mm"):
		s, scale = strings.TrimSuffix(s, "mm"), 0.1
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSuffix(s, "m")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v * scale, true
}

// native reports native=yes (or a truthy spelling) or denotation=native.
func native(tags map[string]string) bool {
	switch strings.ToLower(strings.TrimSpace(tags["native"])) {
	case "yes", "true", "1":
		return true
	}
	return strings.EqualFold(strings.TrimSpace(tags["denotation"]), "native")
}
