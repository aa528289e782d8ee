package handler

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/kojjob/TravelNurse-sub001/internal/engine"
	"github.com/kojjob/TravelNurse-sub001/internal/model"
)

// Calculation handles POST /v1/calculate: one deterministic calculation
// run per request.
type Calculation struct {
	Engine *engine.Engine
	Log    *slog.Logger
}

func (h *Calculation) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.CalculationInstructions.Operations) == 0 {
		writeError(w, http.StatusBadRequest, "At least one operation is required")
		return
	}

	resp := h.Engine.Process(&req)

	h.Log.Info("calculation processed",
		"calculation_id", resp.CalculationMetadata.CalculationID,
		"tenant_id", req.TenantID,
		"operations", len(req.CalculationInstructions.Operations),
		"outcome", resp.CalculationMetadata.CalculationOutcome,
		"duration_ms", resp.CalculationMetadata.CalculationDurationMs,
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
