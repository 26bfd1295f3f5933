package simulation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dydtjq94/lycon-engine/internal/category"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
	"github.com/dydtjq94/lycon-engine/internal/profile"
	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name        string
		in          simulation.CalculatorInput
		wantAssets  float64
		wantMonthly float64
	}{
		{
			name: "ZeroYears",
			in: simulation.CalculatorInput{
				CurrentAssets:     5000,
				AnnualSavings:     1200,
				ReturnRatePercent: 4,
				YearsToRetirement: 0,
			},
			wantAssets:  5000,
			wantMonthly: 5000 * 0.04 / 12,
		},
		{
			name: "NoGrowthNoReturn",
			in: simulation.CalculatorInput{
				AnnualSavings:     100,
				YearsToRetirement: 10,
			},
			wantAssets:  1000,
			wantMonthly: 0,
		},
		{
			name: "GrowingAnnuity",
			in: simulation.CalculatorInput{
				CurrentAssets:        5000,
				AnnualSavings:        1200,
				ReturnRatePercent:    4,
				SavingsGrowthPercent: 2,
				YearsToRetirement:    20,
			},
			wantAssets: 5000*math.Pow(1.04, 20) +
				1200*(math.Pow(1.04, 20)-math.Pow(1.02, 20))/0.02,
			wantMonthly: (5000*math.Pow(1.04, 20) +
				1200*(math.Pow(1.04, 20)-math.Pow(1.02, 20))/0.02) * 0.02 / 12,
		},
		{
			name: "EqualRatesLimit",
			in: simulation.CalculatorInput{
				AnnualSavings:        1000,
				ReturnRatePercent:    5,
				SavingsGrowthPercent: 5,
				YearsToRetirement:    10,
			},
			wantAssets:  1000 * 10 * math.Pow(1.05, 9),
			wantMonthly: 0,
		},
		{
			name: "NegativeYearsClamped",
			in: simulation.CalculatorInput{
				CurrentAssets:     5000,
				ReturnRatePercent: 4,
				YearsToRetirement: -3,
			},
			wantAssets:  5000,
			wantMonthly: 5000 * 0.04 / 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := simulation.Calculate(tt.in)

			assert.InDelta(t, tt.wantAssets, got.RetirementAssets, 1e-6)
			assert.InDelta(t, tt.wantMonthly, got.MonthlyIncome, 1e-6)
		})
	}
}

func TestCalculate_ContinuousNearEqualRates(t *testing.T) {
	// The closed form and its limit must agree where they hand over.
	base := simulation.CalculatorInput{
		AnnualSavings:        1000,
		ReturnRatePercent:    5,
		SavingsGrowthPercent: 5,
		YearsToRetirement:    15,
	}

	atLimit := simulation.Calculate(base)

	base.SavingsGrowthPercent = 5 - 1e-6
	nearLimit := simulation.Calculate(base)

	assert.InDelta(t, atLimit.RetirementAssets, nearLimit.RetirementAssets, 0.01)
}

// TestCalculate_AgreesWithEngine cross-checks the closed form against the
// projection engine on the degenerate scenario both can express: one
// compounding pot plus one growing savings stream and nothing else.
func TestCalculate_AgreesWithEngine(t *testing.T) {
	const (
		assets  = 5000.0
		savings = 1200.0
		r       = 4.0
		g       = 2.0
		n       = 20
	)

	closedForm := simulation.Calculate(simulation.CalculatorInput{
		CurrentAssets:        assets,
		AnnualSavings:        savings,
		ReturnRatePercent:    r,
		SavingsGrowthPercent: g,
		YearsToRetirement:    n,
	})

	p := &profile.Profile{BirthYear: 1982, RetirementAge: 60}
	in := simulation.Input{
		Profile: p,
		Set: instrument.Set{
			Balances: []instrument.Balance{
				{
					ID: "pot", Title: "자산", Source: category.SourceAsset,
					StartYear: 2026, EndYear: 2072,
					Initial: assets, RatePercent: r,
				},
				{
					// The first deposit lands one year out, matching the
					// end-of-year payments the annuity formula assumes.
					ID: "stream", Title: "저축", Source: category.SourceSaving,
					StartYear: 2027, EndYear: 2026 + n,
					RatePercent: r, ContributionAnnual: savings, ContributionGrowthPercent: g,
				},
			},
		},
		CurrentYear: 2026,
	}

	res := simulation.Project(in)

	var atRetirement *simulation.AssetYearEntry
	for i := range res.Assets {
		if res.Assets[i].Year == 2026+n {
			atRetirement = &res.Assets[i]
		}
	}

	require.NotNil(t, atRetirement)
	assert.InDelta(t, closedForm.RetirementAssets, atRetirement.NetAssets, simulation.Tolerance)
}
