// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package charts

import (
	"math"
	"math/rand/v2"
)

// Synthetic sample sizes and parameters. The figures illustrate the shape
// of the dataset; none of the numbers are measured.
const (
	samplePoints = 1000

	latMean, latStd = 39.5, 4.0
	lonMean, lonStd = -98.0, 15.0

	minFrequency, maxFrequency = 5000, 50000

	diameterMu, diameterSigma = 3.0, 0.8
)

// SampleSpecies are the species shown in the frequency panel.
var SampleSpecies = []string{
	"Red Oak", "Sugar Maple", "American Elm", "Tulip Tree", "Black Walnut",
	"Norway Maple", "White Oak", "Green Ash", "Silver Maple", "Pin Oak",
}

// Synthetic holds the seeded draws behind the distribution figure.
type Synthetic struct {
	Latitudes   []float64
	Longitudes  []float64
	Species     []string
	Frequencies []int
	Diameters   []float64

	NativeLabels []string
	NativeCounts []float64
}

// SyntheticData draws the distribution figure data from a PCG source seeded
// with seed. The same seed always yields identical arrays.
func SyntheticData(seed uint64) *Synthetic {
	r := rand.New(rand.NewPCG(seed, seed))

	d := &Synthetic{
		Latitudes:    make([]float64, samplePoints),
		Longitudes:   make([]float64, samplePoints),
		Species:      append([]string(nil), SampleSpecies...),
		Frequencies:  make([]int, len(SampleSpecies)),
		Diameters:    make([]float64, samplePoints),
		NativeLabels: []string{"Native", "Non-native"},
		NativeCounts: []float64{720000, 660000},
	}

	for i := range d.Latitudes {
		d.Latitudes[i] = latMean + latStd*r.NormFloat64()
	}
	for i := range d.Longitudes {
		d.Longitudes[i] = lonMean + lonStd*r.NormFloat64()
	}
	for i := range d.Frequencies {
		d.Frequencies[i] = minFrequency + r.IntN(maxFrequency-minFrequency)
	}
	for i := range d.Diameters {
		d.Diameters[i] = math.Exp(diameterMu + diameterSigma*r.NormFloat64())
	}

	return d
}
