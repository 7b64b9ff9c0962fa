// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/insureai/db"
)

var (
	ErrAlreadyExists      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
	ErrStorage            = errors.New("storage error")
)

// storageErr tags a driver error as ErrStorage while keeping the cause.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// base carries what both stores need to talk to the database.
type base struct {
	db      *sql.DB
	dialect string
	now     func() time.Time
}

func (b *base) q(query string) string {
	return db.Rebind(b.dialect, query)
}

// timestamp returns the current time in UTC so stored values sort as text on sqlite.
func (b *base) timestamp() time.Time {
	return b.now().UTC()
}

// Option configures a store.
type Option func(*base)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

func newBase(conn *sql.DB, dialect string, opts []Option) base {
	b := base{db: conn, dialect: dialect, now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
