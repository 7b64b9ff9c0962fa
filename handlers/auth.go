// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"

	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/models"
	"github.com/danielhkuo/insureai/session"
)

// Accounts is the part of store.Credentials the auth handlers use
type Accounts interface {
	CreateAccount(ctx context.Context, username, password string) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

type AuthHandler struct {
	accounts Accounts
	sessions *session.Manager
}

func NewAuthHandler(accounts Accounts, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := models.ValidateSignup(req); err != nil {
		respondError(w, err, "Failed to create account")
		return
	}

	user, err := h.accounts.CreateAccount(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err, "Failed to create account")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SignupResponse{
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err, "Login failed")
		return
	}

	sess, token, err := h.sessions.Create(user.Username)
	if err != nil {
		respondError(w, err, "Login failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	h.sessions.Destroy(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}
