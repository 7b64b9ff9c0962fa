// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielhkuo/insureai/session"
)

type contextKey string

const sessionKey contextKey = "session"

// Resolver looks up the session behind a bearer token
type Resolver interface {
	Resolve(token string) (*session.Session, error)
}

// RequireSession rejects requests without a live session and stores the
// session in the request context for the handler.
func RequireSession(sessions Resolver, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := BearerToken(r)
		if token == "" {
			ErrorResponse(w, http.StatusUnauthorized, "Missing session token")
			return
		}

		sess, err := sessions.Resolve(token)
		if err != nil {
			ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		next(w, r.WithContext(WithSession(r.Context(), sess)))
	}
}

// WithSession returns a copy of ctx carrying sess
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the session stored by RequireSession
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok && sess != nil
}

// BearerToken extracts the token from "Authorization: Bearer <token>"
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
