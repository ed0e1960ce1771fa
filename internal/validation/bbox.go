// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package validation

import (
	"strconv"
	"strings"
)

// ValidBBox reports whether s is "south,west,north,east" with valid
// coordinate ranges and south <= north, west <= east.
func ValidBBox(s string) bool {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return false
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return false
		}
		v[i] = f
	}

	south, west, north, east := v[0], v[1], v[2], v[3]
	if !inRange(south, 90) || !inRange(north, 90) || !inRange(west, 180) || !inRange(east, 180) {
		return false
	}
	return south <= north && west <= east
}

func inRange(v, limit float64) bool {
	return v >= -limit && v <= limit
}
