package simulation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/profile"
	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

type Handler struct {
	svc *simulation.Service
}

func NewHandler(svc *simulation.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes are mounted under /profiles.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/{id}/simulate", h.simulate)
}

// simulate runs the projection against the profile's stored instruments.
// The response is the engine output verbatim: the dashboard charts and
// report pages index straight into it.
func (h *Handler) simulate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid profile id", http.StatusBadRequest)
		return
	}

	// asOf pins the horizon start for reproducible report snapshots;
	// it defaults to the server clock.
	now := time.Now()

	if s := r.URL.Query().Get("asOf"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid asOf date", http.StatusBadRequest)
			return
		}

		now = parsed
	}

	out, err := h.svc.Run(r.Context(), id, now)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		slog.Error("simulation failed", "profile", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
