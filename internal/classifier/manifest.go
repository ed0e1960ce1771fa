// Arboretum - Tree Species Identification Demo and Documentation Tooling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/arboretum

package classifier

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/arboretum/internal/models"
)

// ErrInvalidManifest is returned when a manifest cannot describe a network.
var ErrInvalidManifest = errors.New("classifier: invalid manifest")

// Layer kinds.
const (
	KindConv2D    = "conv2d"
	KindMaxPool2D = "maxpool2d"
	KindDropout   = "dropout"
	KindFlatten   = "flatten"
	KindDense     = "dense"
)

// SequentialType is the only supported model type.
const SequentialType = "Sequential"

// Layer is one manifest layer. Only the fields of its kind are used.
type Layer struct {
	Kind       string  `json:"kind"`
	Filters    int     `json:"filters,omitempty"`
	Kernel     int     `json:"kernel,omitempty"`
	Pool       int     `json:"pool,omitempty"`
	Rate       float64 `json:"rate,omitempty"`
	Units      int     `json:"units,omitempty"`
	Activation string  `json:"activation,omitempty"`
}

// Manifest describes a sequential image classifier.
type Manifest struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	InputShape []int    `json:"input_shape"`
	Layers     []Layer  `json:"layers"`
	ClassNames []string `json:"class_names,omitempty"`
}

// Model is a validated manifest with the output shape of every layer.
type Model struct {
	manifest Manifest
	shapes   [][]int
	params   []int64
}

// Load reads and validates the manifest at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("read classifier manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	return New(m)
}

// New validates a manifest and computes its layer shapes.
//
//nolint:gocritic // manifest copied into the model
func New(m Manifest) (*Model, error) {
	if m.Type == "" {
		m.Type = SequentialType
	}
	if m.Type != SequentialType {
		return nil, fmt.Errorf("%w: unsupported model type %q", ErrInvalidManifest, m.Type)
	}
	if len(m.InputShape) != 3 {
		return nil, fmt.Errorf("%w: input_shape must be [height, width, channels], got %v", ErrInvalidManifest, m.InputShape)
	}
	for _, d := range m.InputShape {
		if d <= 0 {
			return nil, fmt.Errorf("%w: input_shape %v has a non-positive dimension", ErrInvalidManifest, m.InputShape)
		}
	}
	if len(m.Layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidManifest)
	}

	model := &Model{
		manifest: m,
		shapes:   make([][]int, len(m.Layers)),
		params:   make([]int64, len(m.Layers)),
	}

	shape := append([]int(nil), m.InputShape...)
	for i, l := range m.Layers {
		out, params, err := propagate(shape, l)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d (%s): %v", ErrInvalidManifest, i, l.Kind, err)
		}
		model.shapes[i] = out
		model.params[i] = params
		shape = out
	}

	if len(shape) != 1 {
		return nil, fmt.Errorf("%w: last layer must produce a vector, got shape %v", ErrInvalidManifest, shape)
	}
	if n := len(m.ClassNames); n > 0 && n != shape[0] {
		return nil, fmt.Errorf("%w: %d class names for %d outputs", ErrInvalidManifest, n, shape[0])
	}

	return model, nil
}

// propagate returns a layer's output shape and parameter count.
// Convolution and pooling use valid padding; pooling strides by its size.
func propagate(in []int, l Layer) ([]int, int64, error) {
	switch l.Kind {
	case KindConv2D:
		if len(in) != 3 {
			return nil, 0, fmt.Errorf("needs a 3-d input, got %v", in)
		}
		if l.Filters <= 0 || l.Kernel <= 0 {
			return nil, 0, fmt.Errorf("filters and kernel must be positive")
		}
		h, w := in[0]-l.Kernel+1, in[1]-l.Kernel+1
		if h <= 0 || w <= 0 {
			return nil, 0, fmt.Errorf("kernel %d larger than input %dx%d", l.Kernel, in[0], in[1])
		}
		params := int64(l.Kernel*l.Kernel*in[2]+1) * int64(l.Filters)
		return []int{h, w, l.Filters}, params, nil

	case KindMaxPool2D:
		if len(in) != 3 {
			return nil, 0, fmt.Errorf("needs a 3-d input, got %v", in)
		}
		if l.Pool <= 0 {
			return nil, 0, fmt.Errorf("pool must be positive")
		}
		if in[0] < l.Pool || in[1] < l.Pool {
			return nil, 0, fmt.Errorf("pool %d larger than input %dx%d", l.Pool, in[0], in[1])
		}
		h, w := (in[0]-l.Pool)/l.Pool+1, (in[1]-l.Pool)/l.Pool+1
		return []int{h, w, in[2]}, 0, nil

	case KindDropout:
		if l.Rate < 0 || l.Rate >= 1 {
			return nil, 0, fmt.Errorf("rate must be in [0, 1), got %v", l.Rate)
		}
		return append([]int(nil), in...), 0, nil

	case KindFlatten:
		n := 1
		for _, d := range in {
			n *= d
		}
		return []int{n}, 0, nil

	case KindDense:
		if len(in) != 1 {
			return nil, 0, fmt.Errorf("needs a flattened input, got %v", in)
		}
		if l.Units <= 0 {
			return nil, 0, fmt.Errorf("units must be positive")
		}
		return []int{l.Units}, int64(in[0]+1) * int64(l.Units), nil

	default:
		return nil, 0, fmt.Errorf("unknown layer kind %q", l.Kind)
	}
}

// Name returns the manifest name.
func (m *Model) Name() string { return m.manifest.Name }

// Type returns the model type.
func (m *Model) Type() string { return m.manifest.Type }

// Manifest returns a copy of the validated manifest.
func (m *Model) Manifest() Manifest { return m.manifest }

// InputShape returns [height, width, channels].
func (m *Model) InputShape() []int {
	return append([]int(nil), m.manifest.InputShape...)
}

// OutputShape returns the shape produced by the last layer.
func (m *Model) OutputShape() []int {
	return append([]int(nil), m.shapes[len(m.shapes)-1]...)
}

// LayerShape returns the output shape of layer i.
func (m *Model) LayerShape(i int) []int {
	return append([]int(nil), m.shapes[i]...)
}

// OutputClasses returns the number of predicted classes.
func (m *Model) OutputClasses() int {
	return m.shapes[len(m.shapes)-1][0]
}

// CountParams returns the number of trainable parameters.
func (m *Model) CountParams() int64 {
	var total int64
	for _, p := range m.params {
		total += p
	}
	return total
}

// Inspect loads the manifest at path and reports its metadata.
func Inspect(path string) (*models.ClassifierInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat classifier manifest: %w", err)
	}

	model, err := Load(path)
	if err != nil {
		return nil, err
	}

	return &models.ClassifierInfo{
		Name:          model.Name(),
		ModelType:     model.Type(),
		InputShape:    model.InputShape(),
		OutputClasses: model.OutputClasses(),
		TotalParams:   model.CountParams(),
		FileSizeMB:    float64(info.Size()) / (1024 * 1024),
	}, nil
}
