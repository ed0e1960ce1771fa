// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is shared by the config loader, the
// recommendation query path and the OpenStreetMap fetcher. Failures are
// returned as Errors, one FieldError per failing field with a readable
// message:
//
//	latitude   -> "Latitude must be a valid latitude (-90 to 90)"
//	gte=0      -> "DiameterCM must be greater than or equal to 0"
//	oneof=a b  -> "Format must be one of: a b"
//	bbox       -> "BBox must be a bounding box \"south,west,north,east\""
//
// # Custom Validators
//
// bbox checks an Overpass bounding box string: four comma-separated numbers
// in south,west,north,east order with valid ranges and south <= north,
// west <= east.
package validation
