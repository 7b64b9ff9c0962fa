// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database connection and creates the schema.

# Connections

Open selects the driver by dialect and pings the server:

	conn, err := db.Open(db.SQLite, "insureai.db")          // modernc.org/sqlite
	conn, err := db.Open(db.Postgres, "postgres://...")     // github.com/lib/pq

SQLite connections get foreign keys, a busy timeout, and WAL journaling, and
are limited to one open connection so concurrent writes queue up instead of
failing.

Queries are written with ? placeholders; Rebind converts them to $1, $2, ...
for postgres.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: accounts (username unique, case-sensitive; bcrypt password hash)
  - predictions: append-only prediction history, one row per estimate

# Relationships

	users 1──* predictions (predictions.username → users.username)

# Constraints

The predictions table repeats the profile ranges as CHECK constraints and
requires prediction >= 0, so an invalid row cannot be stored even if a caller
skips validation.

# Indexes

  - users.username (unique)
  - predictions.(username, created_at)
*/
package db
