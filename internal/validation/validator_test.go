// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package validation

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type plantingQuery struct {
	Latitude   float64 `validate:"latitude"`
	Longitude  float64 `validate:"longitude"`
	DiameterCM float64 `validate:"gte=0,lte=1000"`
	Format     string  `validate:"omitempty,oneof=json console"`
}

type areaQuery struct {
	BBox string `validate:"required,bbox"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{
			name:  "louisville location",
			input: &plantingQuery{Latitude: 38.2527, Longitude: -85.7585, DiameterCM: 25.4},
		},
		{
			name:  "boundary coordinates",
			input: &plantingQuery{Latitude: -90, Longitude: 180, DiameterCM: 0, Format: "json"},
		},
		{
			name:  "bounding box",
			input: &areaQuery{BBox: "38.20,-85.80,38.30,-85.70"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		input      interface{}
		wantField  string
		wantTag    string
		wantSubstr string
	}{
		{
			name:       "latitude out of range",
			input:      &plantingQuery{Latitude: 91, Longitude: 0},
			wantField:  "Latitude",
			wantTag:    "latitude",
			wantSubstr: "valid latitude",
		},
		{
			name:       "longitude out of range",
			input:      &plantingQuery{Latitude: 0, Longitude: -181},
			wantField:  "Longitude",
			wantTag:    "longitude",
			wantSubstr: "valid longitude",
		},
		{
			name:       "negative diameter",
			input:      &plantingQuery{DiameterCM: -1},
			wantField:  "DiameterCM",
			wantTag:    "gte",
			wantSubstr: "greater than or equal to 0",
		},
		{
			name:       "unknown format",
			input:      &plantingQuery{Format: "xml"},
			wantField:  "Format",
			wantTag:    "oneof",
			wantSubstr: "must be one of: json console",
		},
		{
			name:       "inverted bounding box",
			input:      &areaQuery{BBox: "38.30,-85.80,38.20,-85.70"},
			wantField:  "BBox",
			wantTag:    "bbox",
			wantSubstr: "bounding box",
		},
		{
			name:       "missing bounding box",
			input:      &areaQuery{},
			wantField:  "BBox",
			wantTag:    "required",
			wantSubstr: "is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			if len(verr) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(verr), verr)
			}
			if verr[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr[0].Field, tt.wantField)
			}
			if verr[0].Tag != tt.wantTag {
				t.Errorf("Tag = %q, want %q", verr[0].Tag, tt.wantTag)
			}
			if !strings.Contains(verr.Error(), tt.wantSubstr) {
				t.Errorf("Error() = %q, want substring %q", verr.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestErrors_MultipleFields(t *testing.T) {
	verr := ValidateStruct(&plantingQuery{Latitude: 100, Longitude: 200, DiameterCM: -5})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	fields := verr.Fields()
	want := []string{"Latitude", "Longitude", "DiameterCM"}
	if len(fields) != len(want) {
		t.Fatalf("Fields() = %v, want %v", fields, want)
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, fields[i], want[i])
		}
	}
	if strings.Count(verr.Error(), "; ") != 2 {
		t.Errorf("expected three joined messages, got %q", verr.Error())
	}
}

func TestErrorsWrap(t *testing.T) {
	verr := ValidateStruct(&areaQuery{})
	wrapped := fmt.Errorf("invalid osm settings: %w", verr)

	var got Errors
	if !errors.As(wrapped, &got) {
		t.Fatal("errors.As should find Errors in the chain")
	}
	if got.Fields()[0] != "BBox" {
		t.Errorf("Fields() = %v, want [BBox]", got.Fields())
	}
}

func TestValidBBox(t *testing.T) {
	tests := []struct {
		bbox string
		want bool
	}{
		{"38.2,-85.8,38.3,-85.7", true},
		{" 38.2 , -85.8 , 38.3 , -85.7 ", true},
		{"0,0,0,0", true},
		{"38.2,-85.8,38.3", false},
		{"a,b,c,d", false},
		{"-91,0,0,0", false},
		{"0,0,0,181", false},
		{"10,0,5,1", false},
		{"0,10,1,5", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.bbox, func(t *testing.T) {
			if got := ValidBBox(tt.bbox); got != tt.want {
				t.Errorf("ValidBBox(%q) = %v, want %v", tt.bbox, got, tt.want)
			}
		})
	}
}
