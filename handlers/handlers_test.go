// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/insureai/db"
	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/scenario"
	"github.com/danielhkuo/insureai/session"
	"github.com/danielhkuo/insureai/store"
	"github.com/danielhkuo/insureai/testutil"
)

// testEnv wires real stores, a real adapter and a session manager the way
// the router does
type testEnv struct {
	db          *sql.DB
	sessions    *session.Manager
	ledger      *store.Ledger
	auth        *AuthHandler
	predictions *PredictionHandler
	scenarios   *ScenarioHandler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	adapter := testutil.TestAdapter(t)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)
	ledger := store.NewLedger(conn, db.SQLite)

	return &testEnv{
		db:          conn,
		sessions:    sessions,
		ledger:      ledger,
		auth:        NewAuthHandler(store.NewCredentials(conn, db.SQLite), sessions),
		predictions: NewPredictionHandler(adapter, ledger),
		scenarios:   NewScenarioHandler(scenario.NewEngine(adapter)),
	}
}

// login creates an account and a session for it
func (e *testEnv) login(t *testing.T, username string) (*session.Session, string) {
	t.Helper()

	testutil.CreateTestUser(t, e.db, username, "pw1234")
	sess, token, err := e.sessions.Create(username)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return sess, token
}

// serve runs h behind the session middleware
func (e *testEnv) serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	middleware.RequireSession(e.sessions, h)(w, req)
	return w
}
