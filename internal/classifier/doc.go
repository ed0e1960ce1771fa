// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

/*
Package classifier reads the optional image classifier manifest.

The classifier is described by a JSON layer manifest rather than trained
weights. Load validates the manifest, propagates the input shape through
every layer (valid padding, pooling strided by its size) and counts the
trainable parameters, which is everything the demo reports about the model.

Example manifest:

	{
	  "name": "basic_cnn_tree_species",
	  "type": "Sequential",
	  "input_shape": [224, 224, 3],
	  "layers": [
	    {"kind": "conv2d", "filters": 32, "kernel": 3, "activation": "relu"},
	    {"kind": "maxpool2d", "pool": 2},
	    {"kind": "flatten"},
	    {"kind": "dense", "units": 30, "activation": "softmax"}
	  ]
	}

DefaultArchitecture returns the reference network, and Blocks groups a
manifest into the boxes drawn by the architecture diagram in internal/charts.
*/
package classifier
