package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/importer"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

type Handler struct {
	importSvc     *importer.Service
	instrumentSvc *instrument.Service
}

func NewHandler(importSvc *importer.Service, instrumentSvc *instrument.Service) *Handler {
	return &Handler{
		importSvc:     importSvc,
		instrumentSvc: instrumentSvc,
	}
}

// Routes are mounted under /profiles/{id}/import.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type draftResponse struct {
	Kind                instrument.Kind        `json:"kind"`
	Title               string                 `json:"title"`
	Category            string                 `json:"category,omitempty"`
	StartYear           int                    `json:"startYear,omitempty"`
	EndYear             int                    `json:"endYear,omitempty"`
	Amount              *float64               `json:"amount,omitempty"`
	Basis               instrument.AmountBasis `json:"basis,omitempty"`
	GrowthRatePercent   float64                `json:"growthRatePercent,omitempty"`
	InterestRatePercent float64                `json:"interestRatePercent,omitempty"`
	CurrentValue        *float64               `json:"currentValue,omitempty"`
	Principal           *float64               `json:"principal,omitempty"`
}

type importResponse struct {
	Imported int             `json:"imported"`
	Drafts   []draftResponse `json:"drafts"`
}

// importCSV parses an uploaded bank export, persists the resulting records
// under the profile and echoes them back for review.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	profileID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid profile id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := importer.Source(r.FormValue("source"))
	if source == "" {
		source = importer.SourceKRBank
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := h.importSvc.Import(source, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for _, rec := range records {
		rec.ProfileID = profileID
	}

	if err := h.instrumentSvc.CreateBatch(r.Context(), records); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := importResponse{Imported: len(records)}

	for _, rec := range records {
		resp.Drafts = append(resp.Drafts, draftResponse{
			Kind:                rec.Kind,
			Title:               rec.Title,
			Category:            rec.Category,
			StartYear:           rec.StartYear,
			EndYear:             rec.EndYear,
			Amount:              rec.Amount,
			Basis:               rec.Basis,
			GrowthRatePercent:   rec.GrowthRatePercent,
			InterestRatePercent: rec.InterestRatePercent,
			CurrentValue:        rec.CurrentValue,
			Principal:           rec.Principal,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
