package instrument_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dydtjq94/lycon-engine/internal/category"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
)

var horizon = instrument.HorizonInput{
	BirthYear:   1982,
	CurrentYear: 2026,
	FinalYear:   2072,
}

func ptr(v float64) *float64 { return &v }

func TestNormalize_SkipReasons(t *testing.T) {
	tests := []struct {
		name   string
		record *instrument.Record
		reason string
	}{
		{
			name:   "UnknownKind",
			record: &instrument.Record{Kind: "crypto", Amount: ptr(100)},
			reason: instrument.ReasonUnknownKind,
		},
		{
			name:   "IncomeWithoutAmount",
			record: &instrument.Record{Kind: instrument.KindIncome},
			reason: instrument.ReasonMissingAmount,
		},
		{
			name:   "AssetWithoutValue",
			record: &instrument.Record{Kind: instrument.KindAsset},
			reason: instrument.ReasonMissingAmount,
		},
		{
			name:   "DebtWithoutPrincipal",
			record: &instrument.Record{Kind: instrument.KindDebt},
			reason: instrument.ReasonMissingAmount,
		},
		{
			name: "InvertedYearRange",
			record: &instrument.Record{
				Kind: instrument.KindIncome, Amount: ptr(100),
				StartYear: 2040, EndYear: 2030,
			},
			reason: instrument.ReasonInvertedRange,
		},
		{
			name: "InvertedAgeRange",
			record: &instrument.Record{
				Kind: instrument.KindPension, Amount: ptr(100),
				StartAge: 80, EndAge: 65,
			},
			reason: instrument.ReasonInvertedRange,
		},
		{
			name: "NaNRate",
			record: &instrument.Record{
				Kind: instrument.KindIncome, Amount: ptr(100),
				GrowthRatePercent: math.NaN(),
			},
			reason: instrument.ReasonInvalidRate,
		},
		{
			name: "InfiniteRate",
			record: &instrument.Record{
				Kind: instrument.KindSaving, Amount: ptr(100),
				InterestRatePercent: math.Inf(1),
			},
			reason: instrument.ReasonInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := instrument.Normalize(horizon, []*instrument.Record{tt.record})

			assert.Empty(t, res.Set.Flows)
			assert.Empty(t, res.Set.Balances)
			require.Len(t, res.Skipped, 1)
			assert.Equal(t, tt.reason, res.Skipped[0].Reason)
			assert.Same(t, tt.record, res.Skipped[0].Record)
		})
	}
}

func TestNormalize_SkipsAreNotFatal(t *testing.T) {
	records := []*instrument.Record{
		{Kind: instrument.KindIncome, Title: "급여", Amount: ptr(300), Basis: instrument.BasisMonthly},
		{Kind: "bogus"},
		{Kind: instrument.KindExpense, Title: "생활비", Amount: ptr(200), Basis: instrument.BasisMonthly},
	}

	res := instrument.Normalize(horizon, records)

	assert.Len(t, res.Set.Flows, 2)
	assert.Len(t, res.Skipped, 1)
}

func TestNormalize_DefaultsAndAnnualization(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{Kind: instrument.KindIncome, Title: "급여", Amount: ptr(450), Basis: instrument.BasisMonthly},
	})

	require.Len(t, res.Set.Flows, 1)
	f := res.Set.Flows[0]

	assert.Equal(t, instrument.Inflow, f.Direction)
	assert.Equal(t, 2026, f.StartYear)
	assert.Equal(t, 2072, f.EndYear)
	assert.InDelta(t, 5400, f.BaseAnnual, 1e-9)
}

func TestNormalize_AnnualBasisPassesThrough(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{Kind: instrument.KindExpense, Title: "보험료", Amount: ptr(240), Basis: instrument.BasisAnnual},
	})

	require.Len(t, res.Set.Flows, 1)
	assert.InDelta(t, 240, res.Set.Flows[0].BaseAnnual, 1e-9)
	assert.Equal(t, instrument.Outflow, res.Set.Flows[0].Direction)
}

func TestNormalize_PensionAgeWindow(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{
			Kind: instrument.KindPension, Title: "국민연금",
			Amount: ptr(90), Basis: instrument.BasisMonthly,
			StartAge: 65, EndAge: 90,
		},
	})

	require.Len(t, res.Set.Flows, 1)
	f := res.Set.Flows[0]

	assert.Equal(t, 1982+65, f.StartYear)
	assert.Equal(t, 1982+90, f.EndYear)
	assert.Equal(t, category.SourcePension, f.Source)
	assert.InDelta(t, 1080, f.BaseAnnual, 1e-9)
}

func TestNormalize_SavingSplitsIntoFlowAndBalance(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{
			Kind: instrument.KindSaving, Title: "적금",
			Amount: ptr(50), Basis: instrument.BasisMonthly,
			CurrentValue: ptr(2000), InterestRatePercent: 3,
			EndYear: 2035,
		},
	})

	require.Len(t, res.Set.Flows, 1)
	require.Len(t, res.Set.Balances, 1)

	f := res.Set.Flows[0]
	assert.Equal(t, instrument.Outflow, f.Direction)
	assert.InDelta(t, 600, f.BaseAnnual, 1e-9)

	b := res.Set.Balances[0]
	assert.InDelta(t, 2000, b.Initial, 1e-9)
	assert.InDelta(t, 3, b.RatePercent, 1e-9)
	assert.InDelta(t, 600, b.ContributionAnnual, 1e-9)
	assert.Equal(t, 2035, b.EndYear)
	assert.False(t, b.Debt)
}

func TestNormalize_SavingBalanceOnly(t *testing.T) {
	// An existing deposit with no ongoing contribution yields no outflow.
	res := instrument.Normalize(horizon, []*instrument.Record{
		{Kind: instrument.KindSaving, Title: "예금", CurrentValue: ptr(5000)},
	})

	assert.Empty(t, res.Set.Flows)
	require.Len(t, res.Set.Balances, 1)
}

func TestNormalize_RealEstateRentalYield(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{
			Kind: instrument.KindRealEstate, Title: "오피스텔",
			CurrentValue: ptr(30000), AppreciationRatePercent: 1.5,
			IsRental: true, MonthlyRent: 100,
			LiquidateAtEndYear: true, EndYear: 2040,
		},
	})

	require.Len(t, res.Set.Balances, 1)
	b := res.Set.Balances[0]

	assert.Equal(t, category.SourceRealEstate, b.Source)
	assert.True(t, b.LiquidateAtEnd)
	// 100/month on a 30,000 holding is a 4% annual yield.
	assert.InDelta(t, 4, b.RentalYieldPercent, 1e-9)
}

func TestNormalize_RealEstateWithoutRent(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{Kind: instrument.KindRealEstate, Title: "아파트", CurrentValue: ptr(50000)},
	})

	require.Len(t, res.Set.Balances, 1)
	assert.Zero(t, res.Set.Balances[0].RentalYieldPercent)
}

func TestNormalize_DebtTerm(t *testing.T) {
	tests := []struct {
		name      string
		record    *instrument.Record
		wantStart int
		wantEnd   int
		wantTerm  int
	}{
		{
			name: "ExplicitTerm",
			record: &instrument.Record{
				Kind: instrument.KindDebt, Principal: ptr(20000),
				TermYears: 10,
			},
			wantStart: 2026,
			wantEnd:   2035,
			wantTerm:  10,
		},
		{
			name: "TermFromMaturityYear",
			record: &instrument.Record{
				Kind: instrument.KindDebt, Principal: ptr(20000),
				MaturityYear: 2031,
			},
			wantStart: 2026,
			wantEnd:   2031,
			wantTerm:  6,
		},
		{
			name: "NoTermRunsToHorizon",
			record: &instrument.Record{
				Kind: instrument.KindDebt, Principal: ptr(20000),
			},
			wantStart: 2026,
			wantEnd:   2072,
			wantTerm:  47,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := instrument.Normalize(horizon, []*instrument.Record{tt.record})

			require.Len(t, res.Set.Balances, 1)
			b := res.Set.Balances[0]

			assert.True(t, b.Debt)
			assert.Equal(t, tt.wantStart, b.StartYear)
			assert.Equal(t, tt.wantEnd, b.EndYear)
			assert.Equal(t, tt.wantTerm, b.TermYears)
		})
	}
}

func TestNormalize_DebtRepaymentType(t *testing.T) {
	res := instrument.Normalize(horizon, []*instrument.Record{
		{
			Kind: instrument.KindDebt, Principal: ptr(20000),
			TermYears: 10, RepaymentType: instrument.RepayAmortizing,
		},
		{
			Kind: instrument.KindDebt, Principal: ptr(5000),
			TermYears: 5, RepaymentType: instrument.RepayInterestOnly,
		},
	})

	require.Len(t, res.Set.Balances, 2)
	assert.True(t, res.Set.Balances[0].Amortizing)
	assert.False(t, res.Set.Balances[1].Amortizing)
}
