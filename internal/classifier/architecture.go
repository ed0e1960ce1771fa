// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package classifier

import (
	"fmt"
	"strings"
)

// DefaultClasses is the number of species the reference network predicts.
const DefaultClasses = 30

// DefaultArchitecture returns the reference tree species network:
// three convolution blocks followed by a dropout-regularized dense head.
func DefaultArchitecture() Manifest {
	return Manifest{
		Name:       "basic_cnn_tree_species",
		Type:       SequentialType,
		InputShape: []int{224, 224, 3},
		Layers: []Layer{
			{Kind: KindConv2D, Filters: 32, Kernel: 3, Activation: "relu"},
			{Kind: KindMaxPool2D, Pool: 2},
			{Kind: KindConv2D, Filters: 64, Kernel: 3, Activation: "relu"},
			{Kind: KindMaxPool2D, Pool: 2},
			{Kind: KindConv2D, Filters: 128, Kernel: 3, Activation: "relu"},
			{Kind: KindMaxPool2D, Pool: 2},
			{Kind: KindDropout, Rate: 0.25},
			{Kind: KindFlatten},
			{Kind: KindDense, Units: 512, Activation: "relu"},
			{Kind: KindDropout, Rate: 0.5},
			{Kind: KindDense, Units: DefaultClasses, Activation: "softmax"},
		},
	}
}

// Block is a group of layers drawn as one box in the architecture diagram.
type Block struct {
	Label string
	Kind  string
}

// Blocks groups the manifest into diagram boxes. Pooling and dropout layers
// fold into the preceding convolution or dense box; the first box is the
// input and the last dense layer becomes the output box.
//
//nolint:gocritic // manifest is read only
func Blocks(m Manifest) []Block {
	blocks := []Block{{
		Label: fmt.Sprintf("Input\n%s", joinShape(m.InputShape, "×")),
		Kind:  "input",
	}}

	lastDense := -1
	for i, l := range m.Layers {
		if l.Kind == KindDense {
			lastDense = i
		}
	}

	for i := 0; i < len(m.Layers); i++ {
		l := m.Layers[i]
		switch l.Kind {
		case KindConv2D:
			label := fmt.Sprintf("Conv2D(%d)", l.Filters)
			var extras []string
			for i+1 < len(m.Layers) && foldable(m.Layers[i+1].Kind) {
				i++
				if m.Layers[i].Kind == KindMaxPool2D {
					extras = append(extras, "MaxPool")
				} else {
					extras = append(extras, "Dropout")
				}
			}
			if len(extras) > 0 {
				label += "\n+" + strings.Join(extras, "+")
			}
			blocks = append(blocks, Block{Label: label, Kind: KindConv2D})

		case KindFlatten:
			blocks = append(blocks, Block{Label: "Flatten", Kind: KindFlatten})

		case KindDense:
			if i == lastDense {
				blocks = append(blocks, Block{Label: fmt.Sprintf("Output\n%d Classes", l.Units), Kind: "output"})
				continue
			}
			label := fmt.Sprintf("Dense(%d)", l.Units)
			if i+1 < len(m.Layers) && m.Layers[i+1].Kind == KindDropout {
				label += "\n+Dropout"
				i++
			}
			blocks = append(blocks, Block{Label: label, Kind: KindDense})

		default:
			// A bare pooling or dropout layer without a preceding box.
			blocks = append(blocks, Block{Label: l.Kind, Kind: l.Kind})
		}
	}

	return blocks
}

// FormatShape renders a batch shape the way the demo prints it, e.g.
// "(None, 224, 224, 3)".
func FormatShape(shape []int) string {
	parts := make([]string, 0, len(shape)+1)
	parts = append(parts, "None")
	for _, d := range shape {
		parts = append(parts, fmt.Sprint(d))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func foldable(kind string) bool {
	return kind == KindMaxPool2D || kind == KindDropout
}

func joinShape(shape []int, sep string) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprint(d)
	}
	return strings.Join(parts, sep)
}
