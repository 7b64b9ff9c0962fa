// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing, token, and ID utilities.

# Passwords

Passwords are hashed with bcrypt, which salts every digest:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, password) // ErrPasswordMismatch on failure

Two hashes of the same password differ, but both verify. The plaintext is
never stored.

# Session Tokens

Session tokens are HS256 JWTs carrying the session ID (sid) and the username
(sub):

	token, err := auth.SignSessionToken(sessionID, username, secret, expiresAt)
	claims, err := auth.ParseSessionToken(token, secret)

A valid signature is not enough to be logged in: the session package also
checks that the session still exists, so logout takes effect immediately.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

Random session identifiers (24 bytes, URL-safe base64):

	sid, err := auth.GenerateSessionID()
*/
package auth
