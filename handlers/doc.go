// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the insureai API.

# Handler Types

  - AuthHandler: signup, login, logout
  - PredictionHandler: cost estimates and history
  - ScenarioHandler: what-if catalog and runs

Handlers take their dependencies as interfaces where tests need to swap them:

	authHandler := handlers.NewAuthHandler(creds, sessions)
	predictionHandler := handlers.NewPredictionHandler(adapter, ledger)

# Prediction Flow

	POST /predictions
	  → validate profile (400 on failure, nothing stored)
	  → inference (500 on failure, nothing stored)
	  → ledger record (500 on failure, baseline unchanged)
	  → session baseline updated
	  → 201 with record, monthly/weekly breakdown, cost drivers

# Scenarios

Scenarios run against the baseline of the caller's session. Without one
they return 409. An undefined percent change (zero baseline) is sent as null.

# Error Mapping

	*models.ValidationError       → 400
	store.ErrInvalidCredentials   → 401, same message for unknown user and wrong password
	scenario.ErrUnknownScenario   → 404
	store.ErrAlreadyExists        → 409
	anything else                 → 500, logged
*/
package handlers
