// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package inference wraps the externally trained cost model.

# Loading

Load reads a scaler and a model artifact once at startup:

	adapter, err := inference.Load("model.json", "scaler.json")
	if errors.Is(err, inference.ErrModelUnavailable) {
		// fatal: no predictions can be served
	}

Artifacts are JSON, or YAML when the file ends in .yaml or .yml.

Scaler:

	{"type": "standard", "mean": [6 values], "scale": [6 values]}

Linear model:

	{"type": "linear", "intercept": 1234.5, "coefficients": [6 values]}

Feed-forward network (relu or linear activations, one output):

	{"type": "mlp", "layers": [{"weights": [[...]], "biases": [...], "activation": "relu"}, ...]}

# Prediction

	cost, err := adapter.Predict(profile)

Predict validates the profile, encodes it with models.Profile.Features,
standardizes it, runs the model, and clamps negative output to zero. The
adapter never changes after Load and may be shared across goroutines.
*/
package inference
