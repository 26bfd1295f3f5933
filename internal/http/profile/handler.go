package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/http/auth"
	"github.com/dydtjq94/lycon-engine/internal/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type profileRequest struct {
	Name                string  `json:"name"`
	BirthYear           int     `json:"birthYear"`
	RetirementAge       int     `json:"retirementAge"`
	TargetNetAssets     float64 `json:"targetNetAssets"`
	HasSpouse           bool    `json:"hasSpouse"`
	SpouseBirthYear     int     `json:"spouseBirthYear"`
	SpouseRetirementAge int     `json:"spouseRetirementAge"`
}

type profileResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	BirthYear           int        `json:"birthYear"`
	RetirementAge       int        `json:"retirementAge"`
	RetirementYear      int        `json:"retirementYear"`
	TargetNetAssets     float64    `json:"targetNetAssets"`
	HasSpouse           bool       `json:"hasSpouse"`
	SpouseBirthYear     int        `json:"spouseBirthYear,omitempty"`
	SpouseRetirementAge int        `json:"spouseRetirementAge,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(p *profile.Profile) profileResponse {
	return profileResponse{
		ID:                  p.ID,
		Name:                p.Name,
		BirthYear:           p.BirthYear,
		RetirementAge:       p.RetirementAge,
		RetirementYear:      p.RetirementYear(),
		TargetNetAssets:     p.TargetNetAssets,
		HasSpouse:           p.HasSpouse,
		SpouseBirthYear:     p.SpouseBirthYear,
		SpouseRetirementAge: p.SpouseRetirementAge,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.BirthYear <= 0 || req.RetirementAge <= 0 {
		http.Error(w, "birthYear and retirementAge are required", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), profile.CreateParams{
		OwnerID:             auth.Subject(r.Context()),
		Name:                req.Name,
		BirthYear:           req.BirthYear,
		RetirementAge:       req.RetirementAge,
		TargetNetAssets:     req.TargetNetAssets,
		HasSpouse:           req.HasSpouse,
		SpouseBirthYear:     req.SpouseBirthYear,
		SpouseRetirementAge: req.SpouseRetirementAge,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.List(r.Context(), auth.Subject(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]profileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = toResponse(p)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req struct {
		Name                *string  `json:"name,omitempty"`
		BirthYear           *int     `json:"birthYear,omitempty"`
		RetirementAge       *int     `json:"retirementAge,omitempty"`
		TargetNetAssets     *float64 `json:"targetNetAssets,omitempty"`
		HasSpouse           *bool    `json:"hasSpouse,omitempty"`
		SpouseBirthYear     *int     `json:"spouseBirthYear,omitempty"`
		SpouseRetirementAge *int     `json:"spouseRetirementAge,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.BirthYear != nil {
		p.BirthYear = *req.BirthYear
	}

	if req.RetirementAge != nil {
		p.RetirementAge = *req.RetirementAge
	}

	if req.TargetNetAssets != nil {
		p.TargetNetAssets = *req.TargetNetAssets
	}

	if req.HasSpouse != nil {
		p.HasSpouse = *req.HasSpouse
	}

	if req.SpouseBirthYear != nil {
		p.SpouseBirthYear = *req.SpouseBirthYear
	}

	if req.SpouseRetirementAge != nil {
		p.SpouseRetirementAge = *req.SpouseRetirementAge
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
