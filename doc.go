// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the insureai API server.

insureai estimates annual health insurance costs from a small personal
profile (age, sex, BMI, children, smoking, region), keeps each user's
prediction history, and answers what-if questions such as "what if I quit
smoking?" against the user's latest estimate.

# Starting the Server

The server needs a session secret and the trained model artifacts:

	SESSION_SECRET=change-me go run . -model model.json -scaler scaler.json

Or against postgres:

	go run . -t postgres -d "postgres://..." -session-secret change-me

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for session tokens
  - DATABASE_URL (-d): required only when DATABASE_TYPE is postgres

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite file (default: insureai.db)
  - MODEL_PATH (-model), SCALER_PATH (-scaler): JSON or YAML artifacts
  - SESSION_TTL (-session-ttl): session lifetime (default: 12h)
  - LOGIN_RATE_PER_MIN (-login-rate): login/signup attempts per IP (default: 10)
  - TRUST_PROXY (-trust-proxy): rate limit on X-Forwarded-For behind a reverse proxy
  - LOG_LEVEL (-log-level): debug, info, warn or error

The process exits at startup if the model or scaler cannot be loaded.

# Architecture

  - handlers: HTTP request handlers (auth, predictions, scenarios)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, sessions, rate limiting, JSON helpers
  - models: Profile, validation, request/response types
  - store: Credential store and prediction ledger
  - inference: Model artifact loading and prediction
  - scenario: What-if engine
  - insights: Breakdowns, cost drivers, history summaries
  - session: Per-login state and tokens
  - auth: Password hashing, IDs, token signing
  - db: Connections and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
