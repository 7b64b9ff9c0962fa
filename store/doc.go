// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists accounts and prediction history.

Credentials holds one row per user with a bcrypt digest of the password.
Ledger is append-only: predictions are inserted and listed, never changed.

	creds := store.NewCredentials(conn, db.SQLite)
	user, err := creds.CreateAccount(ctx, "alice", "pw1234")
	if errors.Is(err, store.ErrAlreadyExists) { ... }

	ledger := store.NewLedger(conn, db.SQLite)
	rec, err := ledger.Record(ctx, "alice", profile, cost)
	history, err := ledger.List(ctx, "alice") // newest first

Driver failures are wrapped with ErrStorage. Queries are written with ?
placeholders and rebound for postgres.
*/
package store
