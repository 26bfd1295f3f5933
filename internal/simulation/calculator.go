package simulation

import "math"

// rateEpsilon decides when the return and growth rates are close enough that
// the growing-annuity formula degenerates and the L'Hôpital limit applies.
const rateEpsilon = 1e-9

// CalculatorInput is the standalone calculator's reduced model: one pot of
// assets, one savings stream, flat rates. Amounts in manwon, rates in
// percent.
type CalculatorInput struct {
	CurrentAssets        float64 `json:"currentAssets"`
	AnnualSavings        float64 `json:"annualSavings"`
	ReturnRatePercent    float64 `json:"returnRatePercent"`
	SavingsGrowthPercent float64 `json:"savingsGrowthPercent"`
	YearsToRetirement    int     `json:"yearsToRetirement"`
}

// CalculatorResult is the closed-form projection.
type CalculatorResult struct {
	RetirementAssets float64 `json:"retirementAssets"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
}

// Calculate is the closed-form variant of the engine: a growing annuity on
// top of a compounding pot. It agrees with Project in the degenerate case of
// one income-like instrument and one constant-growth asset, which the tests
// use as a cross-check oracle.
//
//	retirementAssets = A·(1+r)^n + S·((1+r)^n − (1+g)^n)/(r−g)
//
// with the limit S·n·(1+r)^(n−1) when r ≈ g. Sustainable monthly income is
// the real return on the pot, retirementAssets·(r−g)/12.
func Calculate(in CalculatorInput) CalculatorResult {
	n := in.YearsToRetirement
	if n < 0 {
		n = 0
	}

	r := in.ReturnRatePercent / 100
	g := in.SavingsGrowthPercent / 100

	pot := in.CurrentAssets * math.Pow(1+r, float64(n))

	var contributions float64
	if math.Abs(r-g) < rateEpsilon {
		contributions = in.AnnualSavings * float64(n) * math.Pow(1+r, float64(n-1))
	} else {
		contributions = in.AnnualSavings * (math.Pow(1+r, float64(n)) - math.Pow(1+g, float64(n))) / (r - g)
	}

	assets := pot + contributions

	monthly := assets * (r - g) / 12
	if monthly < 0 {
		monthly = 0
	}

	return CalculatorResult{
		RetirementAssets: assets,
		MonthlyIncome:    monthly,
	}
}
