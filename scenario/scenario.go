// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/danielhkuo/insureai/inference"
	"github.com/danielhkuo/insureai/models"
)

var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario IDs
const (
	QuitSmoking     = "quit_smoking"
	LoseWeight      = "lose_weight"
	ChangeRegion    = "change_region"
	ProjectTenYears = "project_10_years"
)

// Fixed perturbation sizes
const (
	WeightLossBMI   = 5.0
	ProjectionYears = 10
)

// Baseline is a profile with the cost predicted for it.
type Baseline struct {
	Profile models.Profile
	Cost    float64
}

// Scenario is one catalog entry. Transform returns the modified profile, or
// false when the scenario cannot change anything for this profile.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Kind        string // models.KindSavings or models.KindDifference
	Transform   func(models.Profile) (models.Profile, bool)
	NoChange    string // shown when Transform reports false
}

// Result is the outcome of running one scenario against a baseline.
// PercentChange is NaN when the baseline cost is zero.
type Result struct {
	Scenario      Scenario
	Applicable    bool
	Message       string
	Baseline      Baseline
	Modified      models.Profile
	NewCost       float64
	Delta         float64
	PercentChange float64
}

// PercentDefined reports whether PercentChange holds a number.
func (r Result) PercentDefined() bool {
	return !math.IsNaN(r.PercentChange)
}

var catalog = []Scenario{
	{
		ID:          QuitSmoking,
		Name:        "Quit Smoking",
		Description: "Estimated savings if you stop smoking",
		Kind:        models.KindSavings,
		Transform: func(p models.Profile) (models.Profile, bool) {
			if !p.Smoker {
				return p, false
			}
			p.Smoker = false
			return p, true
		},
		NoChange: "Already a non-smoker, no change possible",
	},
	{
		ID:          LoseWeight,
		Name:        "Lose Weight",
		Description: "Estimated savings if your BMI drops by 5 points",
		Kind:        models.KindSavings,
		Transform: func(p models.Profile) (models.Profile, bool) {
			p.BMI = math.Max(models.MinBMI, p.BMI-WeightLossBMI)
			return p, true
		},
	},
	{
		ID:          ChangeRegion,
		Name:        "Change Region",
		Description: "Cost difference if you moved to the next region",
		Kind:        models.KindDifference,
		Transform: func(p models.Profile) (models.Profile, bool) {
			p.Region = models.NextRegion(p.Region)
			return p, true
		},
	},
	{
		ID:          ProjectTenYears,
		Name:        "Project 10 Years",
		Description: "Estimated cost ten years from now",
		Kind:        models.KindDifference,
		Transform: func(p models.Profile) (models.Profile, bool) {
			p.Age = min(models.MaxAge, p.Age+ProjectionYears)
			return p, true
		},
	},
}

// Catalog returns the scenarios in their fixed order.
func Catalog() []Scenario {
	return append([]Scenario(nil), catalog...)
}

// Lookup finds a scenario by ID.
func Lookup(id string) (Scenario, error) {
	for _, s := range catalog {
		if s.ID == id {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
}

// Engine re-prices modified profiles. It holds no per-user state.
type Engine struct {
	predictor inference.Predictor
}

func NewEngine(p inference.Predictor) *Engine {
	return &Engine{predictor: p}
}

// Run applies scenario id to the baseline. The baseline itself is never
// modified, so runs do not build on each other.
func (e *Engine) Run(id string, base Baseline) (Result, error) {
	s, err := Lookup(id)
	if err != nil {
		return Result{}, err
	}
	return e.run(s, base)
}

// RunAll runs every catalog scenario against the same baseline.
func (e *Engine) RunAll(base Baseline) ([]Result, error) {
	results := make([]Result, 0, len(catalog))
	for _, s := range catalog {
		r, err := e.run(s, base)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (e *Engine) run(s Scenario, base Baseline) (Result, error) {
	if err := base.Profile.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid baseline: %w", err)
	}

	modified, ok := s.Transform(base.Profile)
	if !ok {
		return Result{
			Scenario:      s,
			Baseline:      base,
			Modified:      base.Profile,
			NewCost:       base.Cost,
			PercentChange: math.NaN(),
			Message:       s.NoChange,
		}, nil
	}

	cost, err := e.predictor.Predict(modified)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", s.ID, err)
	}
	cost = inference.Clamp(cost)

	delta := cost - base.Cost
	if s.Kind == models.KindSavings {
		delta = base.Cost - cost
	}

	return Result{
		Scenario:      s,
		Applicable:    true,
		Baseline:      base,
		Modified:      modified,
		NewCost:       cost,
		Delta:         delta,
		PercentChange: Percent(delta, base.Cost),
	}, nil
}

// Percent returns delta as a percentage of base, or NaN when base is zero.
func Percent(delta, base float64) float64 {
	if base == 0 {
		return math.NaN()
	}
	return delta / base * 100
}
