// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package scenario computes "what-if" cost changes against a baseline prediction.

# Catalog

	quit_smoking      smoker := false                (smokers only)   savings
	lose_weight       bmi := max(10, bmi - 5)                         savings
	change_region     region := next region, cyclic                   difference
	project_10_years  age := min(100, age + 10)                       difference

Regions cycle northwest → northeast → southwest → southeast → northwest.

# Deltas

	savings    = baseline - new
	difference = new - baseline
	percent    = delta / baseline * 100   (NaN when baseline is 0)

# Usage

	engine := scenario.NewEngine(adapter)
	res, err := engine.Run(scenario.QuitSmoking, scenario.Baseline{Profile: p, Cost: cost})

Each run starts from the baseline it is given; running one scenario never
changes what another sees. Quit Smoking on a non-smoker reports
Applicable=false without calling the model.
*/
package scenario
