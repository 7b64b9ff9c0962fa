// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/danielhkuo/insureai/auth"
	"github.com/danielhkuo/insureai/models"
)

// Credentials persists user accounts and verifies logins.
// Accounts are never updated or deleted.
type Credentials struct {
	base
}

func NewCredentials(conn *sql.DB, dialect string, opts ...Option) *Credentials {
	return &Credentials{base: newBase(conn, dialect, opts)}
}

// CreateAccount stores a new user with a hashed password.
// Returns ErrAlreadyExists if the username (exact match) is taken.
func (s *Credentials) CreateAccount(ctx context.Context, username, password string) (models.User, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.timestamp(),
	}

	// The UNIQUE constraint decides races between concurrent signups.
	res, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (username) DO NOTHING
	`), user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return models.User{}, storageErr("insert user", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.User{}, storageErr("insert user", err)
	}
	if n == 0 {
		return models.User{}, ErrAlreadyExists
	}

	slog.Info("account created", "username", username)
	return user, nil
}

// VerifyCredentials reports whether password matches the stored digest for
// username. Unknown users and wrong passwords both return false with no error;
// the error is reserved for storage failures.
func (s *Credentials) VerifyCredentials(ctx context.Context, username, password string) (bool, error) {
	_, err := s.Authenticate(ctx, username, password)
	if errors.Is(err, ErrInvalidCredentials) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate returns the account when the credentials match, and
// ErrInvalidCredentials otherwise without saying which part was wrong.
func (s *Credentials) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.GetUser(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser looks up an account by exact username.
func (s *Credentials) GetUser(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = ?
	`), username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, storageErr("query user", err)
	}
	return u, nil
}
