package instrument

import (
	"math"

	"github.com/dydtjq94/lycon-engine/internal/category"
)

// Skip reason codes surfaced to the caller for logging and UI warnings.
const (
	ReasonUnknownKind   = "unknown_kind"
	ReasonMissingAmount = "missing_amount"
	ReasonInvertedRange = "inverted_range"
	ReasonInvalidRate   = "invalid_rate"
)

// Skipped is a record the normalizer rejected, with the reason why.
type Skipped struct {
	Record *Record `json:"record"`
	Reason string  `json:"reason"`
}

// NormalizeResult carries the usable instrument set plus the records that
// were dropped. A non-empty skip list is not an error: the simulation runs
// on whatever validated.
type NormalizeResult struct {
	Set     Set
	Skipped []Skipped
}

// HorizonInput is the slice of the profile the normalizer needs to resolve
// defaults and age-based windows.
type HorizonInput struct {
	BirthYear   int
	CurrentYear int
	FinalYear   int // horizon end, used when a record has no end year
}

// Normalize validates raw records and canonicalizes them into cash-flow and
// balance-sheet instruments. Invalid records are skipped, never fatal.
// Monthly amounts are annualized; pension age windows become year windows.
func Normalize(in HorizonInput, records []*Record) NormalizeResult {
	var res NormalizeResult

	for _, r := range records {
		reason := validate(r)
		if reason != "" {
			res.Skipped = append(res.Skipped, Skipped{Record: r, Reason: reason})
			continue
		}

		appendNormalized(&res.Set, in, r)
	}

	return res
}

func validate(r *Record) string {
	switch r.Kind {
	case KindIncome, KindExpense, KindPension:
		if r.Amount == nil {
			return ReasonMissingAmount
		}
	case KindSaving:
		if r.Amount == nil && r.CurrentValue == nil {
			return ReasonMissingAmount
		}
	case KindRealEstate, KindAsset:
		if r.CurrentValue == nil {
			return ReasonMissingAmount
		}
	case KindDebt:
		if r.Principal == nil {
			return ReasonMissingAmount
		}
	default:
		return ReasonUnknownKind
	}

	if r.EndYear != 0 && r.StartYear != 0 && r.StartYear > r.EndYear {
		return ReasonInvertedRange
	}

	if r.Kind == KindPension && r.EndAge != 0 && r.StartAge > r.EndAge {
		return ReasonInvertedRange
	}

	for _, rate := range []float64{r.GrowthRatePercent, r.InterestRatePercent, r.AppreciationRatePercent} {
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return ReasonInvalidRate
		}
	}

	return ""
}

func appendNormalized(set *Set, in HorizonInput, r *Record) {
	start := r.StartYear
	if start == 0 {
		start = in.CurrentYear
	}

	end := r.EndYear
	if end == 0 {
		end = in.FinalYear
	}

	switch r.Kind {
	case KindIncome:
		set.Flows = append(set.Flows, flow(r, Inflow, start, end, annualized(r)))

	case KindExpense:
		set.Flows = append(set.Flows, flow(r, Outflow, start, end, annualized(r)))

	case KindPension:
		if r.StartAge != 0 {
			start = in.BirthYear + r.StartAge
		}

		if r.EndAge != 0 {
			end = in.BirthYear + r.EndAge
		}

		set.Flows = append(set.Flows, flow(r, Inflow, start, end, annualized(r)))

	case KindSaving:
		contribution := annualized(r)
		if contribution > 0 {
			set.Flows = append(set.Flows, flow(r, Outflow, start, end, contribution))
		}

		set.Balances = append(set.Balances, Balance{
			ID:                        r.ID.String(),
			Title:                     r.Title,
			Source:                    r.Source(),
			StartYear:                 start,
			EndYear:                   end,
			Initial:                   deref(r.CurrentValue),
			RatePercent:               r.InterestRatePercent,
			ContributionAnnual:        contribution,
			ContributionGrowthPercent: r.GrowthRatePercent,
		})

	case KindRealEstate:
		b := Balance{
			ID:             r.ID.String(),
			Title:          r.Title,
			Source:         category.SourceRealEstate,
			StartYear:      start,
			EndYear:        end,
			Initial:        deref(r.CurrentValue),
			RatePercent:    r.AppreciationRatePercent,
			LiquidateAtEnd: r.LiquidateAtEndYear,
		}

		if r.IsRental && r.MonthlyRent > 0 && b.Initial > 0 {
			b.RentalYieldPercent = r.MonthlyRent * 12 / b.Initial * 100
		}

		set.Balances = append(set.Balances, b)

	case KindAsset:
		set.Balances = append(set.Balances, Balance{
			ID:          r.ID.String(),
			Title:       r.Title,
			Source:      r.Source(),
			StartYear:   start,
			EndYear:     end,
			Initial:     deref(r.CurrentValue),
			RatePercent: r.GrowthRatePercent,
		})

	case KindDebt:
		term := r.TermYears
		if term == 0 && r.MaturityYear != 0 {
			term = r.MaturityYear - start + 1
		}

		if term > 0 {
			end = start + term - 1
		}

		set.Balances = append(set.Balances, Balance{
			ID:          r.ID.String(),
			Title:       r.Title,
			Source:      category.SourceDebt,
			StartYear:   start,
			EndYear:     end,
			Initial:     deref(r.Principal),
			RatePercent: r.InterestRatePercent,
			Debt:        true,
			Amortizing:  r.RepaymentType == RepayAmortizing,
			TermYears:   end - start + 1,
		})
	}
}

func flow(r *Record, dir Direction, start, end int, baseAnnual float64) Flow {
	return Flow{
		ID:                r.ID.String(),
		Title:             r.Title,
		Source:            r.Source(),
		Direction:         dir,
		StartYear:         start,
		EndYear:           end,
		BaseAnnual:        baseAnnual,
		GrowthRatePercent: r.GrowthRatePercent,
	}
}

func annualized(r *Record) float64 {
	amount := deref(r.Amount)
	if r.Basis == BasisMonthly {
		amount *= 12
	}

	return amount
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
