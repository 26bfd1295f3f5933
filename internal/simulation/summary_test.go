package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dydtjq94/lycon-engine/internal/profile"
	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

func TestBuildSummary(t *testing.T) {
	p := &profile.Profile{
		BirthYear:       1979,
		RetirementAge:   50, // 2029
		TargetNetAssets: 10000,
	}

	res := &simulation.Result{
		CashFlow: []simulation.CashFlowYearEntry{
			{Year: 2026, NetAmount: 100},
			{Year: 2027, NetAmount: 100},
			{Year: 2028, NetAmount: 100},
			{Year: 2029, NetAmount: -50},
			{Year: 2030, NetAmount: -10},
		},
		Assets: []simulation.AssetYearEntry{
			{Year: 2026, NetAssets: 100},
			{Year: 2027, NetAssets: 200},
			{Year: 2028, NetAssets: 300},
			{Year: 2029, NetAssets: 250},
			{Year: 2030, NetAssets: 240},
		},
	}

	got := simulation.BuildSummary(p, res, simulation.Metrics{})

	assert.Equal(t, 2026, got.CurrentYear)
	assert.Equal(t, 2029, got.RetirementYear)
	assert.Equal(t, 2030, got.FinalYear)

	assert.InDelta(t, 100, got.CurrentNetAssets, 1e-9)
	assert.InDelta(t, 250, got.RetirementNetAssets, 1e-9)
	assert.InDelta(t, 240, got.FinalNetAssets, 1e-9)

	assert.InDelta(t, 300, got.PeakNetAssets, 1e-9)
	assert.Equal(t, 2028, got.PeakYear)

	assert.Equal(t, 2029, got.FirstDeficitYear)
	assert.InDelta(t, 10000, got.TargetNetAssets, 1e-9)
}

func TestBuildSummary_NoDeficit(t *testing.T) {
	p := &profile.Profile{BirthYear: 1979, RetirementAge: 50}

	res := &simulation.Result{
		CashFlow: []simulation.CashFlowYearEntry{{Year: 2026, NetAmount: 100}},
		Assets:   []simulation.AssetYearEntry{{Year: 2026, NetAssets: 100}},
	}

	got := simulation.BuildSummary(p, res, simulation.Metrics{})
	assert.Zero(t, got.FirstDeficitYear)
}

func TestBuildSummary_EmptyProjection(t *testing.T) {
	p := &profile.Profile{BirthYear: 1979, RetirementAge: 50, TargetNetAssets: 500}

	got := simulation.BuildSummary(p, &simulation.Result{}, simulation.Metrics{})

	assert.Zero(t, got.CurrentYear)
	assert.Equal(t, 2029, got.RetirementYear)
	assert.InDelta(t, 500, got.TargetNetAssets, 1e-9)
}
