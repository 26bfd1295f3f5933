// Package simulation is the projection engine: it folds a household's
// normalized instruments over the planning horizon into an annual cash-flow
// ledger and an annual balance-sheet series, plus derived metrics. It is
// pure: no I/O, no clock, no mutation of its inputs, so a run can be
// repeated on every what-if keystroke and yields identical output.
package simulation

import (
	"math"

	"github.com/dydtjq94/lycon-engine/internal/category"
	"github.com/dydtjq94/lycon-engine/internal/instrument"
	"github.com/dydtjq94/lycon-engine/internal/profile"
)

// Tolerance within which a breakdown must reconcile to its total, in manwon.
const Tolerance = 0.01

// liquidCashLabel names the synthetic balance that absorbs each year's cash
// surplus or deficit.
const liquidCashLabel = "유동자금"

// CategorizedAmount is one breakdown line item. Amount is non-negative; its
// sign is implied by the list it sits in.
type CategorizedAmount struct {
	Label  string          `json:"label"`
	Amount float64         `json:"amount"`
	Source category.Source `json:"sourceType"`
}

type CashFlowBreakdown struct {
	Positives []CategorizedAmount `json:"positives"`
	Negatives []CategorizedAmount `json:"negatives"`
}

// CashFlowYearEntry is one year of the net cash-flow series. The breakdown
// carries one line per instrument, not pre-aggregated by category:
// aggregation is a reporting-time concern keyed on Source.
type CashFlowYearEntry struct {
	Year      int               `json:"year"`
	Age       int               `json:"age"`
	NetAmount float64           `json:"netAmount"`
	Breakdown CashFlowBreakdown `json:"breakdown"`
}

type AssetBreakdown struct {
	AssetItems []CategorizedAmount `json:"assetItems"`
	DebtItems  []CategorizedAmount `json:"debtItems"`
}

// AssetYearEntry is one year of the balance-sheet series.
// TotalAssets - TotalDebt == NetAssets holds exactly by construction.
type AssetYearEntry struct {
	Year        int            `json:"year"`
	Age         int            `json:"age"`
	TotalAssets float64        `json:"totalAssets"`
	TotalDebt   float64        `json:"totalDebt"`
	NetAssets   float64        `json:"netAssets"`
	Breakdown   AssetBreakdown `json:"breakdown"`
}

// Result is the engine's output, consumed verbatim by the dashboard charts
// and report pages. Field names and units (manwon, percent) are a stable
// contract.
type Result struct {
	CashFlow []CashFlowYearEntry `json:"cashflow"`
	Assets   []AssetYearEntry    `json:"assets"`
}

// Input is one frozen simulation request. CurrentYear is injected rather
// than read from the clock so runs are deterministic.
type Input struct {
	Profile     *profile.Profile
	Set         instrument.Set
	CurrentYear int
}

// balanceState tracks one balance-sheet position through the fold.
type balanceState struct {
	def     *instrument.Balance
	value   float64
	payment float64 // annual annuity payment, amortizing debts only
}

// Project runs both projectors over the horizon. Years are folded in order
// because savings interest, amortizing debt and liquid cash all carry state
// forward; within a year the cash-flow ledger is computed first so that
// liquidation proceeds and debt service are visible to the same year's
// balance-sheet roll-forward.
func Project(in Input) *Result {
	horizon := NewHorizon(in.CurrentYear, in.Profile.DeathYear())

	res := &Result{
		CashFlow: make([]CashFlowYearEntry, 0, horizon.Len()),
		Assets:   make([]AssetYearEntry, 0, horizon.Len()),
	}

	states := make([]*balanceState, len(in.Set.Balances))
	for i := range in.Set.Balances {
		states[i] = newBalanceState(&in.Set.Balances[i], horizon.Start)
	}

	liquidCash := 0.0

	for _, year := range horizon.Years() {
		entry := cashFlowYear(in, states, year)
		res.CashFlow = append(res.CashFlow, entry)

		for _, bs := range states {
			bs.roll(year)
		}

		liquidCash += entry.NetAmount

		res.Assets = append(res.Assets, assetYear(in, states, liquidCash, year))
	}

	return res
}

// ProjectCashFlow returns only the cash-flow series.
func ProjectCashFlow(in Input) []CashFlowYearEntry {
	return Project(in).CashFlow
}

// ProjectAssets returns only the balance-sheet series.
func ProjectAssets(in Input) []AssetYearEntry {
	return Project(in).Assets
}

func cashFlowYear(in Input, states []*balanceState, year int) CashFlowYearEntry {
	var breakdown CashFlowBreakdown

	for i := range in.Set.Flows {
		f := &in.Set.Flows[i]
		if !f.ActiveIn(year) {
			continue
		}

		item := CategorizedAmount{Label: f.Title, Amount: f.AmountAt(year), Source: f.Source}

		if f.Direction == instrument.Inflow {
			breakdown.Positives = append(breakdown.Positives, item)
		} else {
			breakdown.Negatives = append(breakdown.Negatives, item)
		}
	}

	for _, bs := range states {
		def := bs.def

		switch {
		case def.Debt && def.ActiveIn(year):
			breakdown.Negatives = append(breakdown.Negatives, CategorizedAmount{
				Label:  def.Title,
				Amount: bs.debtService(year),
				Source: category.SourceFinancing,
			})

		case def.RentalYieldPercent > 0 && def.ActiveIn(year):
			breakdown.Positives = append(breakdown.Positives, CategorizedAmount{
				Label:  def.Title + " 임대수익",
				Amount: def.ValueAt(year) * def.RentalYieldPercent / 100,
				Source: category.SourceRealEstate,
			})
		}

		// Liquidation proceeds land in the transition year, right after the
		// holding leaves the books.
		if def.LiquidateAtEnd && year == def.EndYear+1 {
			breakdown.Positives = append(breakdown.Positives, CategorizedAmount{
				Label:  def.Title + " 매각대금",
				Amount: def.ValueAt(def.EndYear),
				Source: category.SourceRealEstate,
			})
		}
	}

	net := 0.0
	for _, item := range breakdown.Positives {
		net += item.Amount
	}

	for _, item := range breakdown.Negatives {
		net -= item.Amount
	}

	return CashFlowYearEntry{
		Year:      year,
		Age:       in.Profile.CurrentAge(year),
		NetAmount: net,
		Breakdown: breakdown,
	}
}

func assetYear(in Input, states []*balanceState, liquidCash float64, year int) AssetYearEntry {
	var breakdown AssetBreakdown

	for _, bs := range states {
		if !bs.onBooks(year) {
			continue
		}

		item := CategorizedAmount{Label: bs.def.Title, Amount: bs.value, Source: bs.def.Source}

		if bs.def.Debt {
			breakdown.DebtItems = append(breakdown.DebtItems, item)
		} else {
			breakdown.AssetItems = append(breakdown.AssetItems, item)
		}
	}

	// A cash deficit is a shortfall: it shows up on the debt side so every
	// breakdown amount stays non-negative.
	if liquidCash >= 0 {
		breakdown.AssetItems = append(breakdown.AssetItems, CategorizedAmount{
			Label:  liquidCashLabel,
			Amount: liquidCash,
			Source: category.SourceCash,
		})
	} else {
		breakdown.DebtItems = append(breakdown.DebtItems, CategorizedAmount{
			Label:  liquidCashLabel + " 부족",
			Amount: -liquidCash,
			Source: category.SourceCash,
		})
	}

	totalAssets := 0.0
	for _, item := range breakdown.AssetItems {
		totalAssets += item.Amount
	}

	totalDebt := 0.0
	for _, item := range breakdown.DebtItems {
		totalDebt += item.Amount
	}

	return AssetYearEntry{
		Year:        year,
		Age:         in.Profile.CurrentAge(year),
		TotalAssets: totalAssets,
		TotalDebt:   totalDebt,
		NetAssets:   totalAssets - totalDebt,
		Breakdown:   breakdown,
	}
}

// newBalanceState seeds one position as of fromYear. A position opened
// earlier is rolled through its pre-projection years first, so the fold
// starts from the seasoned value: appreciation and contributions already
// accrued, scheduled debt payments already made.
func newBalanceState(def *instrument.Balance, fromYear int) *balanceState {
	bs := &balanceState{def: def}

	if def.Debt {
		// Seed the outstanding principal up front so the first active year's
		// interest is charged against it before the roll-forward runs.
		bs.value = def.Initial

		if def.Amortizing {
			bs.payment = annuityPayment(def.Initial, def.RatePercent, def.TermYears)
		}
	}

	for year := def.StartYear; year < fromYear; year++ {
		bs.roll(year)
	}

	return bs
}

// annuityPayment is the equal-payment amortization schedule: the constant
// annual payment that retires principal p at rate over n years.
func annuityPayment(p, ratePercent float64, n int) float64 {
	if n <= 0 {
		return p
	}

	if ratePercent == 0 {
		return p / float64(n)
	}

	r := ratePercent / 100

	return p * r / (1 - math.Pow(1+r, -float64(n)))
}

// debtService is the year's cash outflow for a debt: interest on the
// outstanding principal for interest-only debts, the full annuity payment
// (interest plus scheduled principal) for amortizing ones.
func (bs *balanceState) debtService(year int) float64 {
	if bs.def.Amortizing {
		return bs.payment
	}

	return bs.value * bs.def.RatePercent / 100
}

// onBooks reports whether the position appears on the year's balance sheet.
// Debts drop off after maturity; liquidated holdings drop off the year after
// their end year; everything else stays and keeps compounding.
func (bs *balanceState) onBooks(year int) bool {
	if year < bs.def.StartYear {
		return false
	}

	if bs.def.Debt || bs.def.LiquidateAtEnd {
		return year <= bs.def.EndYear
	}

	return true
}

// roll advances the balance into year. The first active year seeds the
// declared starting value (plus that year's contribution, matching the
// contribution outflow already charged to the ledger); later years compound
// the prior balance.
func (bs *balanceState) roll(year int) {
	def := bs.def

	switch {
	case year < def.StartYear:

	case year == def.StartYear:
		bs.value = def.Initial

		if !def.Debt {
			bs.value += def.ContributionAt(year)
		} else if def.Amortizing {
			bs.value = amortize(bs.value, def.RatePercent, bs.payment)
		}

	case def.Debt:
		if year > def.EndYear {
			bs.value = 0
		} else if def.Amortizing {
			bs.value = amortize(bs.value, def.RatePercent, bs.payment)
		}
		// Interest-only principal stays flat until maturity.

	default:
		bs.value = bs.value*(1+def.RatePercent/100) + def.ContributionAt(year)
	}
}

// amortize accrues one year of interest and applies the annuity payment.
func amortize(balance, ratePercent, payment float64) float64 {
	balance = balance*(1+ratePercent/100) - payment
	if balance < 0 {
		return 0
	}

	return balance
}
