// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package recommend

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDimensionMismatch is returned when a vector's width differs from
	// the width the scaler or index was fitted with.
	ErrDimensionMismatch = errors.New("recommend: dimension mismatch")

	// ErrEmptyIndex is returned when fitting or querying an index with no rows.
	ErrEmptyIndex = errors.New("recommend: empty index")

	// ErrNotFitted is returned when Transform or KNeighbors runs before Fit.
	ErrNotFitted = errors.New("recommend: not fitted")
)

// StandardScaler removes the per-feature mean and divides by the population
// standard deviation. A feature with zero variance keeps scale 1 so it is
// centred but not divided.
type StandardScaler struct {
	Mean  []float64
	Scale []float64
}

// ScalerState is the persisted form of a StandardScaler.
type ScalerState struct {
	Features []string
	Mean     []float64
	Scale    []float64
}

// Fit computes mean and scale from the rows of X.
func (s *StandardScaler) Fit(X [][]float64) error {
	if len(X) == 0 {
		return fmt.Errorf("fit scaler: %w", ErrEmptyIndex)
	}

	dim := len(X[0])
	if dim == 0 {
		return fmt.Errorf("fit scaler: rows have no features")
	}

	column := make([]float64, len(X))
	mean := make([]float64, dim)
	scale := make([]float64, dim)

	for j := 0; j < dim; j++ {
		for i, row := range X {
			if len(row) != dim {
				return fmt.Errorf("fit scaler: row %d has %d features, want %d: %w", i, len(row), dim, ErrDimensionMismatch)
			}
			column[i] = row[j]
		}
		m, sd := stat.PopMeanStdDev(column, nil)
		mean[j] = m
		scale[j] = sd
		if sd == 0 {
			scale[j] = 1
		}
	}

	s.Mean = mean
	s.Scale = scale
	return nil
}

// Dim returns the fitted feature width, or 0 before Fit.
func (s *StandardScaler) Dim() int {
	return len(s.Mean)
}

// Transform returns the scaled copy of x.
func (s *StandardScaler) Transform(x []float64) ([]float64, error) {
	if len(s.Mean) == 0 {
		return nil, ErrNotFitted
	}
	if len(x) != len(s.Mean) {
		return nil, fmt.Errorf("transform %d features, scaler has %d: %w", len(x), len(s.Mean), ErrDimensionMismatch)
	}

	out := make([]float64, len(x))
	for j, v := range x {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out, nil
}

// TransformAll scales every row of X.
func (s *StandardScaler) TransformAll(X [][]float64) ([][]float64, error) {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled, err := s.Transform(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = scaled
	}
	return out, nil
}

// State returns the persisted form of the scaler.
func (s *StandardScaler) State() ScalerState {
	return ScalerState{
		Features: append([]string(nil), FeatureNames...),
		Mean:     append([]float64(nil), s.Mean...),
		Scale:    append([]float64(nil), s.Scale...),
	}
}

// ScalerFromState rebuilds a scaler, rejecting inconsistent state.
//
//nolint:gocritic // state passed by value after decoding
func ScalerFromState(st ScalerState) (*StandardScaler, error) {
	if len(st.Mean) == 0 {
		return nil, fmt.Errorf("scaler state: %w", ErrNotFitted)
	}
	if len(st.Mean) != len(st.Scale) {
		return nil, fmt.Errorf("scaler state has %d means and %d scales: %w", len(st.Mean), len(st.Scale), ErrDimensionMismatch)
	}
	for j, v := range st.Scale {
		if v == 0 {
			return nil, fmt.Errorf("scaler state: feature %d has zero scale", j)
		}
	}
	return &StandardScaler{Mean: st.Mean, Scale: st.Scale}, nil
}
