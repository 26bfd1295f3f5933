package simulation

import (
	"github.com/dydtjq94/lycon-engine/internal/profile"
)

// Summary is the pre-aggregated payload handed to the narrative service.
// It deliberately contains only totals and ratios: the narrative generator
// never sees the raw series.
type Summary struct {
	CurrentYear    int `json:"currentYear"`
	RetirementYear int `json:"retirementYear"`
	FinalYear      int `json:"finalYear"`

	CurrentNetAssets    float64 `json:"currentNetAssets"`
	RetirementNetAssets float64 `json:"retirementNetAssets"`
	FinalNetAssets      float64 `json:"finalNetAssets"`
	PeakNetAssets       float64 `json:"peakNetAssets"`
	PeakYear            int     `json:"peakYear"`

	TargetNetAssets float64 `json:"targetNetAssets"`

	// FirstDeficitYear is the first year the ledger runs negative, 0 when it
	// never does.
	FirstDeficitYear int `json:"firstDeficitYear"`

	Metrics Metrics `json:"metrics"`
}

// BuildSummary condenses a projection into the narrative payload.
func BuildSummary(p *profile.Profile, res *Result, metrics Metrics) Summary {
	s := Summary{
		RetirementYear:  p.RetirementYear(),
		TargetNetAssets: p.TargetNetAssets,
		Metrics:         metrics,
	}

	if len(res.Assets) == 0 {
		return s
	}

	s.CurrentYear = res.Assets[0].Year
	s.FinalYear = res.Assets[len(res.Assets)-1].Year
	s.CurrentNetAssets = res.Assets[0].NetAssets
	s.FinalNetAssets = res.Assets[len(res.Assets)-1].NetAssets

	if entry := entryAtYear(res.Assets, p.RetirementYear()); entry != nil {
		s.RetirementNetAssets = entry.NetAssets
	}

	s.PeakNetAssets = res.Assets[0].NetAssets
	s.PeakYear = res.Assets[0].Year

	for _, entry := range res.Assets[1:] {
		if entry.NetAssets > s.PeakNetAssets {
			s.PeakNetAssets = entry.NetAssets
			s.PeakYear = entry.Year
		}
	}

	for _, entry := range res.CashFlow {
		if entry.NetAmount < -Tolerance {
			s.FirstDeficitYear = entry.Year
			break
		}
	}

	return s
}
