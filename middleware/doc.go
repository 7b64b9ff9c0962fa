// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Sessions

Protected routes require "Authorization: Bearer <token>":

	mux.HandleFunc("POST /predictions", middleware.WithLogging(
		middleware.RequireSession(sessions, predictionHandler.Predict)))

Handlers read the resolved session back with SessionFromContext.

# Rate Limiting

Login and signup are limited per client IP with a token bucket:

	limiter := middleware.NewRateLimiter(cfg.LoginRate, cfg.TrustProxy)
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(limiter.Limit(h.Login)))

Over-limit requests get 429 with a Retry-After header.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

The rate limiter keys on the connection's peer address:

	ip := middleware.RemoteIP(r)

Behind a trusted proxy (-trust-proxy) it keys on the forwarded client
address instead, which the client can set freely otherwise:

	ip := middleware.GetClientIP(r)
*/
package middleware
