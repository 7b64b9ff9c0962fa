// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielhkuo/insureai/inference"
	"github.com/danielhkuo/insureai/insights"
	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/models"
	"github.com/danielhkuo/insureai/scenario"
)

// History is the part of store.Ledger the prediction handlers use
type History interface {
	Record(ctx context.Context, username string, p models.Profile, cost float64) (models.PredictionRecord, error)
	List(ctx context.Context, username string) ([]models.PredictionRecord, error)
}

type PredictionHandler struct {
	predictor inference.Predictor
	history   History
	now       func() time.Time
}

func NewPredictionHandler(predictor inference.Predictor, history History) *PredictionHandler {
	return &PredictionHandler{predictor: predictor, history: history, now: time.Now}
}

// Predict handles POST /predictions
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req models.PredictRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	profile, err := req.ToProfile()
	if err != nil {
		respondError(w, err, "Prediction failed")
		return
	}

	cost, err := h.predictor.Predict(profile)
	if err != nil {
		respondError(w, err, "Prediction failed")
		return
	}

	// The baseline only moves once the record is safely stored
	rec, err := h.history.Record(r.Context(), sess.Username, profile, cost)
	if err != nil {
		respondError(w, err, "Failed to save prediction")
		return
	}
	sess.SetBaseline(scenario.Baseline{Profile: profile, Cost: cost})

	middleware.JSONResponse(w, http.StatusCreated, models.PredictResponse{
		Record:    rec,
		Breakdown: insights.Breakdown(cost),
		Drivers:   insights.CostDrivers(profile),
	})
}

// History handles GET /predictions
func (h *PredictionHandler) History(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	records, err := h.history.List(r.Context(), sess.Username)
	if err != nil {
		respondError(w, err, "Failed to load history")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{
		Predictions: insights.HistoryEntries(records, h.now()),
		Summary:     insights.Summarize(records),
	})
}
