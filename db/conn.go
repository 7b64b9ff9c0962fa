// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported dialects
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// sqlitePragmas turn on foreign keys and make writers wait on each other
// instead of failing with SQLITE_BUSY.
var sqlitePragmas = []string{
	"_pragma=foreign_keys(1)",
	"_pragma=busy_timeout(5000)",
	"_pragma=journal_mode(WAL)",
}

// Open connects to the database and verifies the connection.
func Open(dialect, url string) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch dialect {
	case SQLite:
		conn, err = sql.Open("sqlite", sqliteDSN(url))
		if err == nil {
			// One writer at a time; sqlite serializes the rest.
			conn.SetMaxOpenConns(1)
		}
	case Postgres:
		conn, err = sql.Open("postgres", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	if strings.Contains(url, "_pragma=") {
		return url
	}
	if !strings.HasPrefix(url, "file:") {
		url = "file:" + url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + strings.Join(sqlitePragmas, "&")
}

// Rebind rewrites ? placeholders into the dialect's form.
// Queries must not contain literal question marks.
func Rebind(dialect, query string) string {
	if dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
