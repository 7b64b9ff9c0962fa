// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/insureai/cliparse"
	"github.com/danielhkuo/insureai/handlers"
	"github.com/danielhkuo/insureai/inference"
	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/scenario"
	"github.com/danielhkuo/insureai/session"
	"github.com/danielhkuo/insureai/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, predictor inference.Predictor, sessions *session.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Storage
	creds := store.NewCredentials(db, cfg.DatabaseType)
	ledger := store.NewLedger(db, cfg.DatabaseType)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(creds, sessions)
	predictionHandler := handlers.NewPredictionHandler(predictor, ledger)
	scenarioHandler := handlers.NewScenarioHandler(scenario.NewEngine(predictor))

	limiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.TrustProxy)
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts (public, rate limited per IP)
	mux.HandleFunc("POST /auth/signup", middleware.WithLogging(limiter.Limit(authHandler.Signup)))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(limiter.Limit(authHandler.Login)))
	mux.HandleFunc("POST /auth/logout", protected(authHandler.Logout))

	// Predictions
	mux.HandleFunc("POST /predictions", protected(predictionHandler.Predict))
	mux.HandleFunc("GET /predictions", protected(predictionHandler.History))

	// What-if scenarios against the session baseline
	mux.HandleFunc("GET /scenarios", protected(scenarioHandler.List))
	mux.HandleFunc("POST /scenarios", protected(scenarioHandler.RunAll))
	mux.HandleFunc("POST /scenarios/{id}", protected(scenarioHandler.Run))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("insureai API v1"))
	})

	return mux
}
