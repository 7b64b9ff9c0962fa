// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: sqlite file or PostgreSQL connection string (default: insureai.db for sqlite)
  - ModelPath, ScalerPath: model artifacts (default: model.json, scaler.json)
  - SessionSecret: HMAC secret for session tokens (required)
  - SessionTTL: absolute session lifetime (default: 12h)
  - LoginRate: login/signup attempts per minute per client IP (default: 10)
  - TrustProxy: rate limit on forwarded client addresses (default: false)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-model           Model artifact
	-scaler          Scaler artifact
	-session-secret  Session secret
	-session-ttl     Session lifetime
	-login-rate      Login attempts per minute
	-trust-proxy     Trust forwarded headers
	-log-level       Log level

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	MODEL_PATH         → -model
	SCALER_PATH        → -scaler
	SESSION_SECRET     → -session-secret
	SESSION_TTL        → -session-ttl
	LOGIN_RATE_PER_MIN → -login-rate
	TRUST_PROXY        → -trust-proxy
	LOG_LEVEL          → -log-level

CLI flags take precedence over environment variables. LoadDotenv can populate
the environment from a .env file first; it never overrides variables that are
already set.

# Example

	// In main.go
	cliparse.LoadDotenv(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
*/
package cliparse
