// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/insureai/auth"
	"github.com/danielhkuo/insureai/cliparse"
	"github.com/danielhkuo/insureai/db"
	"github.com/danielhkuo/insureai/inference"
	"github.com/danielhkuo/insureai/models"
)

// TestSessionSecret signs session tokens in tests
const TestSessionSecret = "test-session-secret"

func init() {
	// Full-cost bcrypt makes every signup in a test take ~100ms
	auth.PasswordCost = bcrypt.MinCost
}

// SetupTestDB opens a fresh sqlite database in a temp dir with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "test.db",
		DatabaseType:  cliparse.DatabaseSQLite,
		ModelPath:     "model.json",
		ScalerPath:    "scaler.json",
		SessionSecret: TestSessionSecret,
		SessionTTL:    time.Hour,
		LoginRate:     1000,
	}
}

// TestAdapter returns a linear model over unscaled features:
//
//	1000 + 100*age + 50*sex + 10*bmi + 200*children + 5000*smoker + 30*region
func TestAdapter(t *testing.T) *inference.Adapter {
	t.Helper()

	scaler, err := inference.NewScaler(inference.ScalerArtifact{
		Type:  inference.TypeStandardScaler,
		Mean:  []float64{0, 0, 0, 0, 0, 0},
		Scale: []float64{1, 1, 1, 1, 1, 1},
	})
	if err != nil {
		t.Fatalf("Failed to build test scaler: %v", err)
	}
	model, err := inference.NewRegressor(inference.ModelArtifact{
		Type:         inference.TypeLinear,
		Intercept:    1000,
		Coefficients: []float64{100, 50, 10, 200, 5000, 30},
	})
	if err != nil {
		t.Fatalf("Failed to build test model: %v", err)
	}
	a, err := inference.New(scaler, model)
	if err != nil {
		t.Fatalf("Failed to build test adapter: %v", err)
	}
	return a
}

// TestProfile is a valid profile the test model prices at 4300
func TestProfile() models.Profile {
	return models.Profile{
		Age:      30,
		Sex:      models.SexMale,
		BMI:      25.0,
		Children: 0,
		Smoker:   false,
		Region:   models.RegionNorthwest,
	}
}

// CreateTestUser inserts an account directly and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username, password string) string {
	t.Helper()

	id, _ := auth.GenerateID(16)
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, id, username, hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Bearer builds the Authorization header for a session token
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
