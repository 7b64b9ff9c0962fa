// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/insureai/insights"
	"github.com/danielhkuo/insureai/middleware"
	"github.com/danielhkuo/insureai/models"
	"github.com/danielhkuo/insureai/scenario"
)

type ScenarioHandler struct {
	engine *scenario.Engine
}

func NewScenarioHandler(engine *scenario.Engine) *ScenarioHandler {
	return &ScenarioHandler{engine: engine}
}

// List handles GET /scenarios
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	catalog := scenario.Catalog()
	infos := make([]models.ScenarioInfo, 0, len(catalog))
	for _, s := range catalog {
		infos = append(infos, models.ScenarioInfo{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Kind:        s.Kind,
		})
	}
	middleware.JSONResponse(w, http.StatusOK, infos)
}

// Run handles POST /scenarios/{id}
func (h *ScenarioHandler) Run(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if _, err := scenario.Lookup(id); err != nil {
		respondError(w, err, "Scenario failed")
		return
	}

	base, ok := sess.Baseline()
	if !ok {
		middleware.ErrorResponse(w, http.StatusConflict, msgNoBaseline)
		return
	}

	res, err := h.engine.Run(id, base)
	if err != nil {
		respondError(w, err, "Scenario failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toScenarioResponse(res))
}

// RunAll handles POST /scenarios
func (h *ScenarioHandler) RunAll(w http.ResponseWriter, r *http.Request) {
	sess, ok := currentSession(w, r)
	if !ok {
		return
	}

	base, ok := sess.Baseline()
	if !ok {
		middleware.ErrorResponse(w, http.StatusConflict, msgNoBaseline)
		return
	}

	results, err := h.engine.RunAll(base)
	if err != nil {
		respondError(w, err, "Scenario failed")
		return
	}

	resp := models.ScenarioRunAllResponse{
		Baseline:  models.PredictionBaseline{Profile: base.Profile, Cost: base.Cost},
		Scenarios: make([]models.ScenarioResponse, 0, len(results)),
	}
	for _, res := range results {
		resp.Scenarios = append(resp.Scenarios, toScenarioResponse(res))
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

func toScenarioResponse(res scenario.Result) models.ScenarioResponse {
	out := models.ScenarioResponse{
		ScenarioID:   res.Scenario.ID,
		Name:         res.Scenario.Name,
		Applicable:   res.Applicable,
		Message:      res.Message,
		BaselineCost: res.Baseline.Cost,
		NewCost:      res.NewCost,
		Kind:         res.Scenario.Kind,
		Delta:        res.Delta,
		DeltaDisplay: insights.Describe(res.Delta, res.PercentChange, res.PercentDefined()),
	}
	if res.Applicable {
		modified := res.Modified
		out.ModifiedProfile = &modified
	}
	// NaN has no JSON form; an undefined percent is sent as null
	if res.PercentDefined() {
		pct := res.PercentChange
		out.PercentChange = &pct
	}
	return out
}
