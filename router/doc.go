// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the insureai API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	mux := router.NewRouter(db, cfg, adapter, sessions)

# Endpoints

Health:

	GET /health

Accounts (rate limited per client IP):

	POST /auth/signup - Create account
	POST /auth/login  - Start session, returns bearer token
	POST /auth/logout - End session

Predictions (require Authorization: Bearer <token>):

	POST /predictions - Estimate annual cost, record it, set scenario baseline
	GET  /predictions - History newest first, with summary

Scenarios (require a session):

	GET  /scenarios      - Catalog
	POST /scenarios      - Run every scenario against the baseline
	POST /scenarios/{id} - Run one scenario

# Handler Initialization

The router builds the stores from the shared connection and injects them:

	authHandler := handlers.NewAuthHandler(store.NewCredentials(db, cfg.DatabaseType), sessions)
	predictionHandler := handlers.NewPredictionHandler(adapter, store.NewLedger(db, cfg.DatabaseType))
	scenarioHandler := handlers.NewScenarioHandler(scenario.NewEngine(adapter))
*/
package router
