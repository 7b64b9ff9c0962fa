// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The same DDL runs on sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Accounts
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Prediction history (append-only)
CREATE TABLE IF NOT EXISTS predictions (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL REFERENCES users(username),
    age INTEGER NOT NULL CHECK (age BETWEEN 18 AND 100),
    sex TEXT NOT NULL CHECK (sex IN ('male', 'female')),
    bmi DOUBLE PRECISION NOT NULL CHECK (bmi >= 10 AND bmi <= 60),
    children INTEGER NOT NULL CHECK (children BETWEEN 0 AND 10),
    smoker INTEGER NOT NULL CHECK (smoker IN (0, 1)),
    region TEXT NOT NULL CHECK (region IN ('northeast', 'northwest', 'southeast', 'southwest')),
    prediction DOUBLE PRECISION NOT NULL CHECK (prediction >= 0),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_predictions_username_created ON predictions(username, created_at);
`
