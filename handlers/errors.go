// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/models"
	"github.com/danielhkuo/insureai/scenario"
	"github.com/danielhkuo/insureai/session"
	"github.com/danielhkuo/insureai/store"
)

// Client-facing messages
const (
	msgInvalidJSON        = "Invalid JSON"
	msgInvalidCredentials = "Invalid username or password"
	msgNoSession          = "Invalid or expired session"
	msgNoBaseline         = "Make a prediction before running scenarios"
)

// respondError maps a domain error to its HTTP status. Anything unrecognised
// is logged and reported as a 500 with fallback as the message.
func respondError(w http.ResponseWriter, err error, fallback string) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, store.ErrAlreadyExists):
		middleware.ErrorResponse(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, store.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, session.ErrInvalidSession):
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgNoSession)
	case errors.Is(err, scenario.ErrUnknownScenario):
		middleware.ErrorResponse(w, http.StatusNotFound, "Scenario not found")
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
	default:
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}

// currentSession returns the session set by middleware.RequireSession,
// answering 401 itself when there is none.
func currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, msgNoSession)
		return nil, false
	}
	return sess, true
}
