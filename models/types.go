package models

import "time"

// Scenario delta kinds
const (
	KindSavings    = "savings"
	KindDifference = "difference"
)

// Request types

type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PredictRequest is a Profile; pointers let missing fields be told apart from zero values.
type PredictRequest struct {
	Age      *int     `json:"age"`
	Sex      string   `json:"sex"`
	BMI      *float64 `json:"bmi"`
	Children *int     `json:"children"`
	Smoker   *bool    `json:"smoker"`
	Region   string   `json:"region"`
}

// Response types

type SignupResponse struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

type PredictResponse struct {
	Record    PredictionRecord `json:"record"`
	Breakdown CostBreakdown    `json:"breakdown"`
	Drivers   []CostDriver     `json:"drivers"`
}

type HistoryResponse struct {
	Predictions []HistoryEntry `json:"predictions"`
	Summary     HistorySummary `json:"summary"`
}

type HistoryEntry struct {
	PredictionRecord
	CostDisplay string `json:"cost_display"`
	CreatedAgo  string `json:"created_ago"`
}

type ScenarioInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// ScenarioResponse carries one scenario outcome. PercentChange is null when
// the baseline cost is zero.
type ScenarioResponse struct {
	ScenarioID      string   `json:"scenario_id"`
	Name            string   `json:"name"`
	Applicable      bool     `json:"applicable"`
	Message         string   `json:"message,omitempty"`
	BaselineCost    float64  `json:"baseline_cost"`
	ModifiedProfile *Profile `json:"modified_profile,omitempty"`
	NewCost         float64  `json:"new_cost"`
	Kind            string   `json:"kind"`
	Delta           float64  `json:"delta"`
	PercentChange   *float64 `json:"percent_change"`
	DeltaDisplay    string   `json:"delta_display"`
}

type ScenarioRunAllResponse struct {
	Baseline  PredictionBaseline `json:"baseline"`
	Scenarios []ScenarioResponse `json:"scenarios"`
}

type PredictionBaseline struct {
	Profile Profile `json:"profile"`
	Cost    float64 `json:"cost"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type PredictionRecord struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Profile       Profile   `json:"profile"`
	PredictedCost float64   `json:"predicted_cost"`
	CreatedAt     time.Time `json:"created_at"`
}

type CostBreakdown struct {
	Annual         float64 `json:"annual"`
	Monthly        float64 `json:"monthly"`
	Weekly         float64 `json:"weekly"`
	AnnualDisplay  string  `json:"annual_display"`
	MonthlyDisplay string  `json:"monthly_display"`
	WeeklyDisplay  string  `json:"weekly_display"`
}

// Cost driver impact levels
const (
	ImpactLow      = "low"
	ImpactModerate = "moderate"
	ImpactHigh     = "high"
)

type CostDriver struct {
	Factor string `json:"factor"`
	Status string `json:"status"`
	Impact string `json:"impact"`
}

type HistorySummary struct {
	Count   int     `json:"count"`
	Latest  float64 `json:"latest"`
	Highest float64 `json:"highest"`
	Lowest  float64 `json:"lowest"`
	Average float64 `json:"average"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
