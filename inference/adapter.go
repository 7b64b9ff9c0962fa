// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package inference

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/danielhkuo/insureai/models"
)

// ErrModelUnavailable means the model or scaler could not be loaded.
// Nothing can be predicted until the artifacts are fixed.
var ErrModelUnavailable = errors.New("model unavailable")

// Predictor produces an annual cost estimate for a profile.
type Predictor interface {
	Predict(p models.Profile) (float64, error)
}

// Adapter wraps a scaler and regressor behind Predict. It is read-only after
// construction and safe for concurrent use.
type Adapter struct {
	scaler *Scaler
	model  Regressor
}

// New pairs a scaler with a model. Both must take models.FeatureCount inputs.
func New(scaler *Scaler, model Regressor) (*Adapter, error) {
	if scaler == nil || model == nil {
		return nil, fmt.Errorf("%w: scaler and model are required", ErrModelUnavailable)
	}
	if scaler.Width() != models.FeatureCount {
		return nil, fmt.Errorf("%w: scaler expects %d features, want %d", ErrModelUnavailable, scaler.Width(), models.FeatureCount)
	}
	if model.InputWidth() != models.FeatureCount {
		return nil, fmt.Errorf("%w: model expects %d features, want %d", ErrModelUnavailable, model.InputWidth(), models.FeatureCount)
	}
	return &Adapter{scaler: scaler, model: model}, nil
}

// Load reads both artifacts. Any failure is reported as ErrModelUnavailable.
func Load(modelPath, scalerPath string) (*Adapter, error) {
	var sa ScalerArtifact
	if err := readArtifact(scalerPath, &sa); err != nil {
		return nil, fmt.Errorf("%w: scaler: %v", ErrModelUnavailable, err)
	}
	scaler, err := NewScaler(sa)
	if err != nil {
		return nil, fmt.Errorf("%w: scaler: %v", ErrModelUnavailable, err)
	}

	var ma ModelArtifact
	if err := readArtifact(modelPath, &ma); err != nil {
		return nil, fmt.Errorf("%w: model: %v", ErrModelUnavailable, err)
	}
	model, err := NewRegressor(ma)
	if err != nil {
		return nil, fmt.Errorf("%w: model: %v", ErrModelUnavailable, err)
	}

	a, err := New(scaler, model)
	if err != nil {
		return nil, err
	}

	slog.Info("model loaded", "type", ma.Type, "version", ma.Version, "model", modelPath, "scaler", scalerPath)
	return a, nil
}

// Predict validates p, encodes and scales it, runs the model, and clamps the
// result to zero. Out-of-range profiles are rejected before the model runs.
func (a *Adapter) Predict(p models.Profile) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	features := p.Features()
	y := a.model.Predict(a.scaler.Transform(features[:]))
	return Clamp(y), nil
}

// Clamp maps negative and NaN outputs to zero.
func Clamp(cost float64) float64 {
	if math.IsNaN(cost) || cost < 0 {
		return 0
	}
	return cost
}
