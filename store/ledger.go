// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/danielhkuo/insureai/models"
)

// Ledger is the append-only prediction history. Records are never updated
// or deleted.
type Ledger struct {
	base
}

func NewLedger(conn *sql.DB, dialect string, opts ...Option) *Ledger {
	return &Ledger{base: newBase(conn, dialect, opts)}
}

// Record appends one prediction for username. The profile must already be
// valid and cost non-negative; the schema rejects anything else.
func (l *Ledger) Record(ctx context.Context, username string, p models.Profile, cost float64) (models.PredictionRecord, error) {
	// UUIDv7 is time-ordered, which breaks ties between equal timestamps.
	id, err := uuid.NewV7()
	if err != nil {
		return models.PredictionRecord{}, fmt.Errorf("failed to generate record ID: %w", err)
	}

	rec := models.PredictionRecord{
		ID:            id.String(),
		Username:      username,
		Profile:       p,
		PredictedCost: cost,
		CreatedAt:     l.timestamp(),
	}

	_, err = l.db.ExecContext(ctx, l.q(`
		INSERT INTO predictions
			(id, username, age, sex, bmi, children, smoker, region, prediction, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`), rec.ID, rec.Username, p.Age, p.Sex, p.BMI, p.Children, p.SmokerInt(), p.Region, rec.PredictedCost, rec.CreatedAt)
	if err != nil {
		return models.PredictionRecord{}, storageErr("insert prediction", err)
	}

	slog.Info("prediction recorded", "username", username, "record_id", rec.ID, "cost", cost)
	return rec, nil
}

// List returns username's records newest first. A user with no records gets
// an empty slice.
func (l *Ledger) List(ctx context.Context, username string) ([]models.PredictionRecord, error) {
	rows, err := l.db.QueryContext(ctx, l.q(`
		SELECT id, username, age, sex, bmi, children, smoker, region, prediction, created_at
		FROM predictions
		WHERE username = ?
		ORDER BY created_at DESC, id DESC
	`), username)
	if err != nil {
		return nil, storageErr("query predictions", err)
	}
	defer rows.Close()

	records := []models.PredictionRecord{}
	for rows.Next() {
		var rec models.PredictionRecord
		var smoker int
		if err := rows.Scan(
			&rec.ID, &rec.Username, &rec.Profile.Age, &rec.Profile.Sex, &rec.Profile.BMI,
			&rec.Profile.Children, &smoker, &rec.Profile.Region, &rec.PredictedCost, &rec.CreatedAt,
		); err != nil {
			return nil, storageErr("scan prediction", err)
		}
		rec.Profile.Smoker = smoker == 1
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate predictions", err)
	}

	return records, nil
}
