// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package dataset

import (
	"fmt"
	"math"

	"github.com/tomtom215/arboretum/internal/models"
)

// UnknownState is reported for a city whose rows carry no state.
const UnknownState = "Unknown"

// Distribution summarizes where trees matching a species name occur.
// The city breakdown lists at most topN cities and never sums past MatchCount.
func (t *Table) Distribution(species string, topN int) (*models.Distribution, error) {
	matched, err := t.FilterSpecies(species)
	if err != nil {
		return nil, err
	}

	dist := &models.Distribution{
		Species:    species,
		MatchCount: matched.Len(),
	}
	if matched.Len() == 0 {
		return dist, nil
	}

	cities, err := matched.ValueCounts(models.ColCity, topN)
	if err != nil {
		return nil, err
	}
	if len(cities) > 0 && !matched.columns[models.ColState] {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, models.ColState)
	}

	dist.TopCities = make([]models.CityCount, len(cities))
	for i, c := range cities {
		dist.TopCities[i] = models.CityCount{
			City:  c.Name,
			State: matched.firstState(c.Name),
			Count: c.Count,
		}
	}

	if matched.HasCoordinates() {
		dist.Range = matched.geoRange()
	}

	return dist, nil
}

// firstState returns the state of the first row in city, or UnknownState
// when that row has none.
func (t *Table) firstState(city string) string {
	for i := range t.rows {
		if t.rows[i].City == city {
			if t.rows[i].State == "" {
				return UnknownState
			}
			return t.rows[i].State
		}
	}
	return UnknownState
}

// geoRange returns the coordinate bounds, skipping missing (NaN) values.
// It returns nil when no row has both coordinates.
func (t *Table) geoRange() *models.GeoRange {
	var r *models.GeoRange
	for i := range t.rows {
		lat, lon := t.rows[i].Latitude, t.rows[i].Longitude
		if math.IsNaN(lat) || math.IsNaN(lon) {
			continue
		}
		if r == nil {
			r = &models.GeoRange{MinLat: lat, MaxLat: lat, MinLon: lon, MaxLon: lon}
			continue
		}
		r.MinLat = math.Min(r.MinLat, lat)
		r.MaxLat = math.Max(r.MaxLat, lat)
		r.MinLon = math.Min(r.MinLon, lon)
		r.MaxLon = math.Max(r.MaxLon, lon)
	}
	return r
}

// Overview computes dataset summary statistics. Sections whose column is
// absent are skipped and flagged false. Percentages are of the whole table.
func (t *Table) Overview(topN int) (*models.Overview, error) {
	ov := &models.Overview{TotalRecords: t.Len()}

	if t.HasCommonName() {
		ov.HasSpecies = true
		n, err := t.NUnique(models.ColCommonName)
		if err != nil {
			return nil, fmt.Errorf("count species: %w", err)
		}
		ov.UniqueSpecies = n

		top, err := t.ValueCounts(models.ColCommonName, topN)
		if err != nil {
			return nil, fmt.Errorf("rank species: %w", err)
		}
		ov.TopSpecies = t.shares(top)
	}

	if t.HasCity() {
		ov.HasCities = true
		n, err := t.NUnique(models.ColCity)
		if err != nil {
			return nil, fmt.Errorf("count cities: %w", err)
		}
		ov.UniqueCities = n

		top, err := t.ValueCounts(models.ColCity, topN)
		if err != nil {
			return nil, fmt.Errorf("rank cities: %w", err)
		}
		ov.TopCities = top
	}

	if t.HasNative() {
		ov.HasNative = true
		counts, err := t.ValueCounts(models.ColNative, 0)
		if err != nil {
			return nil, fmt.Errorf("count native status: %w", err)
		}
		ov.NativeCounts = t.shares(counts)
	}

	return ov, nil
}

// Percent returns count as a percentage of total, or 0 for an empty total.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func (t *Table) shares(counts []models.CountEntry) []models.ShareEntry {
	out := make([]models.ShareEntry, len(counts))
	for i, c := range counts {
		out[i] = models.ShareEntry{Name: c.Name, Count: c.Count, Percent: Percent(c.Count, t.Len())}
	}
	return out
}
