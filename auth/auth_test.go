// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Keep the suite fast; production uses bcrypt.DefaultCost
	PasswordCost = bcrypt.MinCost
}

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateSessionID(t *testing.T) {
	id, err := GenerateSessionID()
	if err != nil {
		t.Fatalf("GenerateSessionID() error = %v", err)
	}

	// Should be URL-safe (no padding)
	if strings.Contains(id, "=") {
		t.Error("GenerateSessionID() contains padding characters")
	}

	// Should be reasonably long (24 bytes encoded)
	if len(id) < 30 {
		t.Errorf("GenerateSessionID() too short: %d chars", len(id))
	}

	ids := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := GenerateSessionID()
		if err != nil {
			t.Fatalf("GenerateSessionID() error on iteration %d: %v", i, err)
		}
		if ids[id] {
			t.Errorf("GenerateSessionID() produced duplicate: %s", id)
		}
		ids[id] = true
	}
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"short", "abcdef"},
		{"with spaces", "correct horse battery staple"},
		{"unicode", "pässwörd✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}

			// One-way: digest never equals or contains the plaintext
			if hash == tt.password || strings.Contains(hash, tt.password) {
				t.Error("HashPassword() leaked the plaintext")
			}

			if err := CheckPassword(hash, tt.password); err != nil {
				t.Errorf("CheckPassword() with the right password = %v", err)
			}
			if err := CheckPassword(hash, tt.password+"x"); !errors.Is(err, ErrPasswordMismatch) {
				t.Errorf("CheckPassword() with a wrong password = %v, want %v", err, ErrPasswordMismatch)
			}
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, _ := HashPassword("same-password")
	h2, _ := HashPassword("same-password")

	// Salted: equal passwords give different digests, both still verify
	if h1 == h2 {
		t.Error("HashPassword() produced identical digests for two calls")
	}
	if CheckPassword(h1, "same-password") != nil || CheckPassword(h2, "same-password") != nil {
		t.Error("salted digests should both verify")
	}
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	if err := CheckPassword("not-a-bcrypt-hash", "whatever"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("CheckPassword() = %v, want %v", err, ErrPasswordMismatch)
	}
}

func TestSessionToken(t *testing.T) {
	secret := "test-secret"
	exp := time.Now().Add(time.Hour)

	token, err := SignSessionToken("sid-123", "alice", secret, exp)
	if err != nil {
		t.Fatalf("SignSessionToken() error = %v", err)
	}

	claims, err := ParseSessionToken(token, secret)
	if err != nil {
		t.Fatalf("ParseSessionToken() error = %v", err)
	}
	if claims.SessionID != "sid-123" {
		t.Errorf("SessionID = %q, want sid-123", claims.SessionID)
	}
	if claims.Subject != "alice" {
		t.Errorf("Subject = %q, want alice", claims.Subject)
	}
}

func TestParseSessionTokenRejects(t *testing.T) {
	secret := "test-secret"
	valid, _ := SignSessionToken("sid", "alice", secret, time.Now().Add(time.Hour))
	expired, _ := SignSessionToken("sid", "alice", secret, time.Now().Add(-time.Minute))
	noSession, _ := SignSessionToken("", "alice", secret, time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other-secret"},
		{"expired", expired, secret},
		{"missing session id", noSession, secret},
		{"garbage", "not.a.token", secret},
		{"empty", "", secret},
		{"tampered", valid + "x", secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSessionToken(tt.token, tt.secret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseSessionToken() error = %v, want %v", err, ErrInvalidToken)
			}
		})
	}
}

// Benchmark tests
func BenchmarkGenerateID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateID(16)
	}
}

func BenchmarkSignSessionToken(b *testing.B) {
	exp := time.Now().Add(time.Hour)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SignSessionToken("sid", "alice", "secret", exp)
	}
}
