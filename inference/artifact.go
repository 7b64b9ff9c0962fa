// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Artifact types
const (
	TypeStandardScaler = "standard"
	TypeLinear         = "linear"
	TypeMLP            = "mlp"
)

// ScalerArtifact is the on-disk form of a fitted standard scaler.
type ScalerArtifact struct {
	Type  string    `json:"type" yaml:"type"`
	Mean  []float64 `json:"mean" yaml:"mean"`
	Scale []float64 `json:"scale" yaml:"scale"`
}

// ModelArtifact is the on-disk form of a trained regression model.
// Linear models use Intercept and Coefficients; MLPs use Layers.
type ModelArtifact struct {
	Type         string          `json:"type" yaml:"type"`
	Version      string          `json:"version,omitempty" yaml:"version,omitempty"`
	Intercept    float64         `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	Coefficients []float64       `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`
	Layers       []LayerArtifact `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// LayerArtifact is one dense layer: out = activation(W·in + b).
// Weights has one row per output unit.
type LayerArtifact struct {
	Weights    [][]float64 `json:"weights" yaml:"weights"`
	Biases     []float64   `json:"biases" yaml:"biases"`
	Activation string      `json:"activation" yaml:"activation"`
}

// readArtifact decodes path into v, as YAML for .yaml/.yml and JSON otherwise.
// Unknown fields are rejected so typos in artifact files fail loudly.
func readArtifact(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}
