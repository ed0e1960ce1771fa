// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"math"

	"github.com/tomtom215/arboretum/internal/models"
)

// FeatureNames lists the feature vector layout.
var FeatureNames = []string{"latitude", "longitude", "diameter_cm", "native"}

// NumFeatures is the feature vector width.
const NumFeatures = 4

func nativeValue(native bool) float64 {
	if native {
		return 1
	}
	return 0
}

// TreeFeatures returns the feature vector of a dataset row.
func TreeFeatures(t *models.Tree) []float64 {
	return []float64{t.Latitude, t.Longitude, t.DiameterCM, nativeValue(t.Native)}
}

// LocationFeatures returns the feature vector of a query location.
func LocationFeatures(loc *models.Location) []float64 {
	return []float64{loc.Latitude, loc.Longitude, loc.DiameterCM, nativeValue(loc.Native)}
}

// complete reports whether every feature is a finite number.
func complete(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Confidence converts a scaled distance to a 0-100 display score.
func Confidence(distance float64) float64 {
	return math.Max(0, 100-distance*50)
}
