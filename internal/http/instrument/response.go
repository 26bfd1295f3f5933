package instrument

import (
	"time"

	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

// recordRequest is the wire shape for creates and partial updates. Pointers
// keep "absent" distinguishable from zero, matching the record model.
type recordRequest struct {
	Kind     instrument.Kind `json:"kind"`
	Title    *string         `json:"title,omitempty"`
	Category *string         `json:"category,omitempty"`

	StartYear *int `json:"startYear,omitempty"`
	EndYear   *int `json:"endYear,omitempty"`

	Amount            *float64                `json:"amount,omitempty"`
	Basis             *instrument.AmountBasis `json:"basis,omitempty"`
	GrowthRatePercent *float64                `json:"growthRatePercent,omitempty"`

	InterestRatePercent *float64 `json:"interestRatePercent,omitempty"`

	StartAge *int `json:"startAge,omitempty"`
	EndAge   *int `json:"endAge,omitempty"`

	CurrentValue            *float64 `json:"currentValue,omitempty"`
	AppreciationRatePercent *float64 `json:"appreciationRatePercent,omitempty"`

	IsRental           *bool    `json:"isRental,omitempty"`
	MonthlyRent        *float64 `json:"monthlyRent,omitempty"`
	LiquidateAtEndYear *bool    `json:"liquidateAtEndYear,omitempty"`

	Principal     *float64                  `json:"principal,omitempty"`
	TermYears     *int                      `json:"termYears,omitempty"`
	MaturityYear  *int                      `json:"maturityYear,omitempty"`
	RepaymentType *instrument.RepaymentType `json:"repaymentType,omitempty"`
}

func (req *recordRequest) toRecord() *instrument.Record {
	rec := &instrument.Record{Kind: req.Kind}
	req.apply(rec)

	return rec
}

// apply copies every present field onto the record.
func (req *recordRequest) apply(rec *instrument.Record) {
	if req.Title != nil {
		rec.Title = *req.Title
	}

	if req.Category != nil {
		rec.Category = *req.Category
	}

	if req.StartYear != nil {
		rec.StartYear = *req.StartYear
	}

	if req.EndYear != nil {
		rec.EndYear = *req.EndYear
	}

	if req.Amount != nil {
		rec.Amount = req.Amount
	}

	if req.Basis != nil {
		rec.Basis = *req.Basis
	}

	if req.GrowthRatePercent != nil {
		rec.GrowthRatePercent = *req.GrowthRatePercent
	}

	if req.InterestRatePercent != nil {
		rec.InterestRatePercent = *req.InterestRatePercent
	}

	if req.StartAge != nil {
		rec.StartAge = *req.StartAge
	}

	if req.EndAge != nil {
		rec.EndAge = *req.EndAge
	}

	if req.CurrentValue != nil {
		rec.CurrentValue = req.CurrentValue
	}

	if req.AppreciationRatePercent != nil {
		rec.AppreciationRatePercent = *req.AppreciationRatePercent
	}

	if req.IsRental != nil {
		rec.IsRental = *req.IsRental
	}

	if req.MonthlyRent != nil {
		rec.MonthlyRent = *req.MonthlyRent
	}

	if req.LiquidateAtEndYear != nil {
		rec.LiquidateAtEndYear = *req.LiquidateAtEndYear
	}

	if req.Principal != nil {
		rec.Principal = req.Principal
	}

	if req.TermYears != nil {
		rec.TermYears = *req.TermYears
	}

	if req.MaturityYear != nil {
		rec.MaturityYear = *req.MaturityYear
	}

	if req.RepaymentType != nil {
		rec.RepaymentType = *req.RepaymentType
	}
}

type recordResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProfileID uuid.UUID       `json:"profileId"`
	Kind      instrument.Kind `json:"kind"`
	Title     string          `json:"title"`
	Category  string          `json:"category,omitempty"`

	StartYear int `json:"startYear,omitempty"`
	EndYear   int `json:"endYear,omitempty"`

	Amount            *float64               `json:"amount,omitempty"`
	Basis             instrument.AmountBasis `json:"basis,omitempty"`
	GrowthRatePercent float64                `json:"growthRatePercent,omitempty"`

	InterestRatePercent float64 `json:"interestRatePercent,omitempty"`

	StartAge int `json:"startAge,omitempty"`
	EndAge   int `json:"endAge,omitempty"`

	CurrentValue            *float64 `json:"currentValue,omitempty"`
	AppreciationRatePercent float64  `json:"appreciationRatePercent,omitempty"`

	IsRental           bool    `json:"isRental,omitempty"`
	MonthlyRent        float64 `json:"monthlyRent,omitempty"`
	LiquidateAtEndYear bool    `json:"liquidateAtEndYear,omitempty"`

	Principal     *float64                 `json:"principal,omitempty"`
	TermYears     int                      `json:"termYears,omitempty"`
	MaturityYear  int                      `json:"maturityYear,omitempty"`
	RepaymentType instrument.RepaymentType `json:"repaymentType,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func toResponse(rec *instrument.Record) recordResponse {
	return recordResponse{
		ID:                      rec.ID,
		ProfileID:               rec.ProfileID,
		Kind:                    rec.Kind,
		Title:                   rec.Title,
		Category:                rec.Category,
		StartYear:               rec.StartYear,
		EndYear:                 rec.EndYear,
		Amount:                  rec.Amount,
		Basis:                   rec.Basis,
		GrowthRatePercent:       rec.GrowthRatePercent,
		InterestRatePercent:     rec.InterestRatePercent,
		StartAge:                rec.StartAge,
		EndAge:                  rec.EndAge,
		CurrentValue:            rec.CurrentValue,
		AppreciationRatePercent: rec.AppreciationRatePercent,
		IsRental:                rec.IsRental,
		MonthlyRent:             rec.MonthlyRent,
		LiquidateAtEndYear:      rec.LiquidateAtEndYear,
		Principal:               rec.Principal,
		TermYears:               rec.TermYears,
		MaturityYear:            rec.MaturityYear,
		RepaymentType:           rec.RepaymentType,
		CreatedAt:               rec.CreatedAt,
		UpdatedAt:               rec.UpdatedAt,
	}
}

func toResponseList(records []*instrument.Record) []recordResponse {
	resp := make([]recordResponse, len(records))
	for i, rec := range records {
		resp[i] = toResponse(rec)
	}

	return resp
}
