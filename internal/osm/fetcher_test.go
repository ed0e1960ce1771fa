// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package osm

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/arboretum/internal/config"
)

const overpassResponse = `{
  "version": 0.6,
  "generator": "Overpass API",
  "elements": [
    {"type": "node", "id": 300, "lat": 38.26, "lon": -85.75,
     "tags": {"natural": "tree", "species:en": "Sugar Maple", "species": "Acer saccharum", "diameter": "0.3"}},
    {"type": "node", "id": 100, "lat": 38.25, "lon": -85.76,
     "tags": {"natural": "tree", "species:en": "Red Oak", "species": "Quercus rubra", "native": "yes", "addr:city": "Shively"}},
    {"type": "node", "id": 200, "lat": 38.24, "lon": -85.74,
     "tags": {"natural": "tree"}}
  ]
}`

func testConfig(endpoint string) config.OSMConfig {
	return config.OSMConfig{
		Endpoint: endpoint,
		BBox:     "38.20,-85.80,38.30,-85.70",
		City:     "Louisville",
		State:    "Kentucky",
		Timeout:  5 * time.Second,
	}
}

func TestQuery(t *testing.T) {
	q, err := Query("38.20,-85.80,38.30,-85.70")
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	for _, want := range []string{"[out:json];", `node["natural"="tree"](38.20,-85.80,38.30,-85.70);`, "out body;"} {
		if !strings.Contains(q, want) {
			t.Errorf("query missing %q:\n%s", want, q)
		}
	}

	for _, bad := range []string{"", "1,2,3", "38.3,-85.8,38.2,-85.7", "a,b,c,d"} {
		if _, err := Query(bad); !errors.Is(err, ErrInvalidBBox) {
			t.Errorf("Query(%q) error = %v, want ErrInvalidBBox", bad, err)
		}
	}
}

func TestFetcher_Fetch(t *testing.T) {
	var (
		mu       sync.Mutex
		gotQuery string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotQuery = r.FormValue("data")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(overpassResponse))
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(srv.URL))
	trees, err := f.Fetch(context.Background(), "38.20,-85.80,38.30,-85.70")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	mu.Lock()
	if !strings.Contains(gotQuery, `node["natural"="tree"]`) {
		t.Errorf("server received query %q", gotQuery)
	}
	mu.Unlock()

	if len(trees) != 2 {
		t.Fatalf("Fetch() returned %d trees, want 2", len(trees))
	}

	oak, maple := trees[0], trees[1]
	if oak.CommonName != "Red Oak" || !oak.Native || oak.City != "Shively" || oak.State != "Kentucky" {
		t.Errorf("trees[0] = %+v", oak)
	}
	if !math.IsNaN(oak.DiameterCM) {
		t.Errorf("trees[0].DiameterCM = %v, want NaN", oak.DiameterCM)
	}
	if maple.CommonName != "Sugar Maple" || maple.Native || maple.City != "Louisville" {
		t.Errorf("trees[1] = %+v", maple)
	}
	if math.Abs(maple.DiameterCM-30) > 1e-9 {
		t.Errorf("trees[1].DiameterCM = %v, want 30", maple.DiameterCM)
	}
}

func TestFetcher_InvalidBBox(t *testing.T) {
	f := NewFetcher(testConfig("http://127.0.0.1:1"))
	if _, err := f.Fetch(context.Background(), "not a bbox"); !errors.Is(err, ErrInvalidBBox) {
		t.Errorf("Fetch() error = %v, want ErrInvalidBBox", err)
	}
}

func TestFetcher_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewFetcher(testConfig(srv.URL))
	if _, err := f.Fetch(context.Background(), "38.20,-85.80,38.30,-85.70"); err == nil {
		t.Error("Fetch() error = nil, want error")
	}
}

func TestFetcher_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte(overpassResponse))
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(testConfig(srv.URL))
	if _, err := f.Fetch(ctx, "38.20,-85.80,38.30,-85.70"); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}
