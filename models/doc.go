// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Profile

A Profile holds the six attributes a cost estimate is made from:

	p := models.Profile{Age: 30, Sex: "male", BMI: 25.0, Children: 0, Smoker: false, Region: "northwest"}
	if err := p.Validate(); err != nil {
		// *models.ValidationError, report as 400
	}

Allowed ranges:

  - Age: 18 to 100
  - Sex: male, female
  - BMI: 10.0 to 60.0
  - Children: 0 to 10
  - Region: northeast, northwest, southeast, southwest

# Feature Encoding

Features returns the model input vector. The layout is fixed because the
external model was trained against it:

	[age, sex, bmi, children, smoker, region]

	sex:    female=0 male=1
	smoker: false=0 true=1
	region: northwest=0 northeast=1 southwest=2 southeast=3

Regions holds the regions in code order; NextRegion walks the same order.

# Request Types

  - SignupRequest: username, password, confirm_password
  - LoginRequest: username, password
  - PredictRequest: profile fields (all required)

# Response Types

  - SignupResponse, LoginResponse
  - PredictResponse: stored record, cost breakdown, cost drivers
  - HistoryResponse: records newest first plus summary statistics
  - ScenarioResponse, ScenarioRunAllResponse
  - ErrorResponse: error, message

# Validation

ValidateSignup enforces the account policy (all fields present, password
confirmation matches, password at least 6 characters). Validation failures are
*ValidationError values naming the offending field.
*/
package models
