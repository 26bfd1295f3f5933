package simulation

import (
	"math"

	"github.com/dydtjq94/lycon-engine/internal/category"
	"github.com/dydtjq94/lycon-engine/internal/profile"
)

// Metrics are the headline numbers the report pages and the narrative
// service consume. Every function here is total: undefined denominators
// yield 0, never a panic, and the presentation layer renders 0 as "—".
type Metrics struct {
	CAGRPercent            float64 `json:"cagrPercent"`
	AchievementRatePercent float64 `json:"achievementRatePercent"`
	DSRPercent             float64 `json:"dsrPercent"`
	EmergencyFundMonths    float64 `json:"emergencyFundMonths"`
}

// CAGR is the compound annual growth rate between two net-asset snapshots n
// years apart, as a fraction (0.05 = 5%/yr). Undefined when either endpoint
// is non-positive or n is zero.
func CAGR(netAssets0, netAssetsN float64, n int) float64 {
	if n <= 0 || netAssets0 <= 0 || netAssetsN <= 0 {
		return 0
	}

	return math.Pow(netAssetsN/netAssets0, 1/float64(n)) - 1
}

// AchievementRate compares retirement-year net assets to the target, in
// percent. 0 when no target is set.
func AchievementRate(retirementNetAssets, targetNetAssets float64) float64 {
	if targetNetAssets <= 0 {
		return 0
	}

	return retirementNetAssets / targetNetAssets * 100
}

// DSR is annual debt service over annual income, in percent.
func DSR(annualDebtService, annualIncome float64) float64 {
	if annualIncome <= 0 {
		return 0
	}

	return annualDebtService / annualIncome * 100
}

// EmergencyFundMonths is how many months of expenses the liquid assets
// cover.
func EmergencyFundMonths(liquidAssets, monthlyExpense float64) float64 {
	if monthlyExpense <= 0 {
		return 0
	}

	return liquidAssets / monthlyExpense
}

// ComputeMetrics derives the headline metrics from a projection. CAGR and
// the achievement rate are measured from the first projected year to the
// retirement year; DSR and emergency-fund coverage from the first year's
// ledger.
func ComputeMetrics(p *profile.Profile, res *Result) Metrics {
	var m Metrics

	if len(res.Assets) == 0 {
		return m
	}

	first := res.Assets[0]
	retirement := entryAtYear(res.Assets, p.RetirementYear())

	if retirement != nil {
		n := retirement.Year - first.Year
		m.CAGRPercent = CAGR(first.NetAssets, retirement.NetAssets, n) * 100
		m.AchievementRatePercent = AchievementRate(retirement.NetAssets, p.TargetNetAssets)
	}

	if len(res.CashFlow) > 0 {
		var income, debtService, expense float64

		for _, item := range res.CashFlow[0].Breakdown.Positives {
			income += item.Amount
		}

		for _, item := range res.CashFlow[0].Breakdown.Negatives {
			if item.Source == category.SourceFinancing {
				debtService += item.Amount
			} else if item.Source != category.SourceSaving {
				expense += item.Amount
			}
		}

		m.DSRPercent = DSR(debtService, income)
		m.EmergencyFundMonths = EmergencyFundMonths(liquidAssets(first), expense/12)
	}

	return m
}

// liquidAssets sums the cash and savings positions of one snapshot.
func liquidAssets(entry AssetYearEntry) float64 {
	total := 0.0

	for _, item := range entry.Breakdown.AssetItems {
		if item.Source == category.SourceCash || item.Source == category.SourceSaving {
			total += item.Amount
		}
	}

	return total
}

func entryAtYear(entries []AssetYearEntry, year int) *AssetYearEntry {
	for i := range entries {
		if entries[i].Year == year {
			return &entries[i]
		}
	}

	return nil
}
