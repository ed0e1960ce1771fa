// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package osm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/serjvanilla/go-overpass"

	"github.com/tomtom215/arboretum/internal/config"
	"github.com/tomtom215/arboretum/internal/logging"
	"github.com/tomtom215/arboretum/internal/models"
	"github.com/tomtom215/arboretum/internal/validation"
)

// ErrInvalidBBox is returned for a bounding box that is not "south,west,north,east".
var ErrInvalidBBox = errors.New("osm: invalid bounding box")

// Fetcher downloads tree nodes from an Overpass API endpoint.
type Fetcher struct {
	client   *overpass.Client
	timeout  time.Duration
	defaults Defaults
}

// NewFetcher creates a fetcher for the configured endpoint.
func NewFetcher(cfg config.OSMConfig) *Fetcher {
	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}
	client := overpass.NewWithSettings(cfg.Endpoint, 2, httpClient)
	return &Fetcher{
		client:   &client,
		timeout:  cfg.Timeout,
		defaults: Defaults{City: cfg.City, State: cfg.State},
	}
}

// Query returns the Overpass QL selecting every tree node inside bbox.
func Query(bbox string) (string, error) {
	if !validation.ValidBBox(bbox) {
		return "", fmt.Errorf("%w: %q", ErrInvalidBBox, bbox)
	}
	return fmt.Sprintf(`
		[out:json];
		node["natural"="tree"](%s);
		out body;
	`, bbox), nil
}

// Fetch queries the trees inside bbox and maps them to dataset rows sorted
// by node ID. Nodes without any name are skipped.
func (f *Fetcher) Fetch(ctx context.Context, bbox string) ([]models.Tree, error) {
	query, err := Query(bbox)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := f.executeQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	elements := make([]element, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		elements = append(elements, element{
			ID:   node.ID,
			Lat:  node.Lat,
			Lon:  node.Lon,
			Tags: node.Tags,
		})
	}
	trees := convert(elements, f.defaults)

	logging.Ctx(ctx).Debug().
		Str("bbox", bbox).
		Int("nodes", len(elements)).
		Int("trees", len(trees)).
		Dur("duration", time.Since(start)).
		Msg("Overpass query complete")

	return trees, nil
}

// executeQuery runs query, returning early when ctx ends. The HTTP client
// timeout bounds the request itself.
func (f *Fetcher) executeQuery(ctx context.Context, query string) (*overpass.Result, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	type outcome struct {
		result overpass.Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := f.client.Query(query)
		done <- outcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("overpass query: %w", ctx.Err())
	case o := <-done:
		if o.err != nil {
			return nil, fmt.Errorf("overpass query failed: %w", o.err)
		}
		return &o.result, nil
	}
}

// element is the part of an Overpass node used for conversion.
type element struct {
	ID   int64
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// convert maps elements to trees in ascending ID order.
func convert(elements []element, defaults Defaults) []models.Tree {
	sort.Slice(elements, func(i, j int) bool { return elements[i].ID < elements[j].ID })

	trees := make([]models.Tree, 0, len(elements))
	for i := range elements {
		t, ok := TreeFromTags(elements[i].Lat, elements[i].Lon, elements[i].Tags, defaults)
		if !ok {
			continue
		}
		trees = append(trees, t)
	}
	return trees
}
