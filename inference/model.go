// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inference

import (
	"errors"
	"fmt"
	"math"
)

// Regressor maps a scaled feature vector to a raw (unclamped) cost.
type Regressor interface {
	Predict(x []float64) float64
	InputWidth() int
}

// Scaler standardizes raw features: (x - mean) / scale.
type Scaler struct {
	mean  []float64
	scale []float64
}

// NewScaler builds a scaler from a fitted artifact. Zero scales are treated
// as 1, matching how constant features are handled at fit time.
func NewScaler(a ScalerArtifact) (*Scaler, error) {
	if a.Type != "" && a.Type != TypeStandardScaler {
		return nil, fmt.Errorf("unsupported scaler type %q", a.Type)
	}
	if len(a.Mean) == 0 || len(a.Mean) != len(a.Scale) {
		return nil, fmt.Errorf("scaler mean/scale length mismatch (%d/%d)", len(a.Mean), len(a.Scale))
	}

	s := &Scaler{
		mean:  append([]float64(nil), a.Mean...),
		scale: make([]float64, len(a.Scale)),
	}
	for i, v := range a.Scale {
		if !finite(v) || !finite(a.Mean[i]) {
			return nil, fmt.Errorf("scaler has non-finite value at feature %d", i)
		}
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

func (s *Scaler) Width() int { return len(s.mean) }

// Transform returns a new scaled vector; x is not modified.
func (s *Scaler) Transform(x []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = (x[i] - s.mean[i]) / s.scale[i]
	}
	return out
}

// Linear is intercept + coefficients·x.
type Linear struct {
	intercept float64
	coef      []float64
}

func (m *Linear) InputWidth() int { return len(m.coef) }

func (m *Linear) Predict(x []float64) float64 {
	y := m.intercept
	for i, c := range m.coef {
		y += c * x[i]
	}
	return y
}

type dense struct {
	weights [][]float64
	biases  []float64
	relu    bool
}

// MLP is a feed-forward network of dense layers ending in a single output.
type MLP struct {
	layers []dense
}

func (m *MLP) InputWidth() int { return len(m.layers[0].weights[0]) }

func (m *MLP) Predict(x []float64) float64 {
	in := x
	for _, l := range m.layers {
		out := make([]float64, len(l.weights))
		for j, row := range l.weights {
			v := l.biases[j]
			for i, w := range row {
				v += w * in[i]
			}
			if l.relu && v < 0 {
				v = 0
			}
			out[j] = v
		}
		in = out
	}
	return in[0]
}

// NewRegressor builds a model from its artifact, checking every dimension.
func NewRegressor(a ModelArtifact) (Regressor, error) {
	switch a.Type {
	case TypeLinear:
		if len(a.Coefficients) == 0 {
			return nil, errors.New("linear model has no coefficients")
		}
		if !finite(a.Intercept) {
			return nil, errors.New("linear model has non-finite intercept")
		}
		for i, c := range a.Coefficients {
			if !finite(c) {
				return nil, fmt.Errorf("linear model has non-finite coefficient %d", i)
			}
		}
		return &Linear{intercept: a.Intercept, coef: append([]float64(nil), a.Coefficients...)}, nil

	case TypeMLP:
		return newMLP(a.Layers)

	default:
		return nil, fmt.Errorf("unsupported model type %q", a.Type)
	}
}

func newMLP(layers []LayerArtifact) (*MLP, error) {
	if len(layers) == 0 {
		return nil, errors.New("mlp has no layers")
	}

	m := &MLP{layers: make([]dense, len(layers))}
	width := -1
	for li, l := range layers {
		if len(l.Weights) == 0 || len(l.Weights) != len(l.Biases) {
			return nil, fmt.Errorf("layer %d: weights/biases mismatch (%d/%d)", li, len(l.Weights), len(l.Biases))
		}
		in := len(l.Weights[0])
		if in == 0 || (width >= 0 && in != width) {
			return nil, fmt.Errorf("layer %d: expects %d inputs, previous layer has %d outputs", li, in, width)
		}
		for ri, row := range l.Weights {
			if len(row) != in {
				return nil, fmt.Errorf("layer %d: row %d has %d weights, want %d", li, ri, len(row), in)
			}
			for _, w := range row {
				if !finite(w) {
					return nil, fmt.Errorf("layer %d: non-finite weight", li)
				}
			}
		}
		for _, b := range l.Biases {
			if !finite(b) {
				return nil, fmt.Errorf("layer %d: non-finite bias", li)
			}
		}

		var relu bool
		switch l.Activation {
		case "relu":
			relu = true
		case "", "linear":
		default:
			return nil, fmt.Errorf("layer %d: unsupported activation %q", li, l.Activation)
		}

		m.layers[li] = dense{weights: l.Weights, biases: l.Biases, relu: relu}
		width = len(l.Weights)
	}

	if width != 1 {
		return nil, fmt.Errorf("mlp must end in one output, has %d", width)
	}
	return m, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
