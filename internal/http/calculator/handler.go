package calculator

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

// Handler serves the public standalone calculator: the closed-form variant
// of the engine, no stored data involved.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.calculate)
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	var req simulation.CalculatorInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if math.IsNaN(req.ReturnRatePercent) || math.IsInf(req.ReturnRatePercent, 0) ||
		math.IsNaN(req.SavingsGrowthPercent) || math.IsInf(req.SavingsGrowthPercent, 0) {
		http.Error(w, "rates must be finite", http.StatusBadRequest)
		return
	}

	result := simulation.Calculate(req)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
