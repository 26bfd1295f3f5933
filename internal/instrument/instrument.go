package instrument

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dydtjq94/lycon-engine/internal/category"
)

var ErrNotFound = errors.New("instrument not found")

// Kind identifies which of the seven survey collections a record came from.
type Kind string

const (
	KindIncome     Kind = "income"
	KindExpense    Kind = "expense"
	KindSaving     Kind = "saving"
	KindPension    Kind = "pension"
	KindRealEstate Kind = "realEstate"
	KindAsset      Kind = "asset"
	KindDebt       Kind = "debt"
)

// Kinds lists every valid record kind.
var Kinds = []Kind{
	KindIncome, KindExpense, KindSaving, KindPension, KindRealEstate, KindAsset, KindDebt,
}

// AmountBasis says whether a raw amount is per month or per year.
type AmountBasis string

const (
	BasisMonthly AmountBasis = "monthly"
	BasisAnnual  AmountBasis = "annual"
)

// RepaymentType selects the debt projection mode.
type RepaymentType string

const (
	RepayInterestOnly RepaymentType = "interest_only"
	RepayAmortizing   RepaymentType = "amortizing"
)

// Record is the persisted, still-unvalidated shape of one survey entry.
// Optional numeric fields are pointers so "absent" is distinguishable from
// zero; the normalizer decides which ones are required per kind.
// All monetary fields are in manwon.
type Record struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Kind      Kind
	Title     string
	Category  string // free text from the survey, fed to the categorizer

	StartYear int // 0 = current year
	EndYear   int // 0 = horizon end

	// Income, expense, saving contribution, pension payout.
	Amount            *float64
	Basis             AmountBasis
	GrowthRatePercent float64

	// Saving balance compounding, debt interest.
	InterestRatePercent float64

	// Pension: payout window in ages, converted to years via the birth year.
	StartAge int
	EndAge   int

	// Saving initial balance, real estate and generic asset value.
	CurrentValue            *float64
	AppreciationRatePercent float64

	// Real estate.
	IsRental           bool
	MonthlyRent        float64
	LiquidateAtEndYear bool

	// Debt.
	Principal     *float64
	TermYears     int
	MaturityYear  int
	RepaymentType RepaymentType

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Source returns the report bucket for the record.
func (r *Record) Source() category.Source {
	label := r.Category
	if label == "" {
		label = r.Title
	}

	return category.Classify(category.Kind(r.Kind), label)
}

// Direction of a cash flow.
type Direction string

const (
	Inflow  Direction = "inflow"
	Outflow Direction = "outflow"
)

// Flow is a normalized recurring cash flow: an annual base amount growing
// geometrically from its start year.
type Flow struct {
	ID        string
	Title     string
	Source    category.Source
	Direction Direction

	StartYear int
	EndYear   int // inclusive

	BaseAnnual        float64
	GrowthRatePercent float64
}

// ActiveIn reports whether the flow pays out during year.
func (f *Flow) ActiveIn(year int) bool {
	return year >= f.StartYear && year <= f.EndYear
}

// AmountAt is the flow's amount in year: base compounded once per elapsed
// year since the start year.
func (f *Flow) AmountAt(year int) float64 {
	return compound(f.BaseAnnual, f.GrowthRatePercent, year-f.StartYear)
}

// Balance is a normalized balance-sheet position: a starting value rolled
// forward year by year. EndYear bounds the active phase (contributions,
// rental income, debt service, liquidation trigger); the position itself
// stays on the books afterwards unless it is a debt or gets liquidated.
type Balance struct {
	ID     string
	Title  string
	Source category.Source

	StartYear int
	EndYear   int // inclusive

	Initial     float64
	RatePercent float64 // interest (saving/debt) or appreciation (real estate/asset)

	// Saving contributions, mirrored by an Outflow in Flows.
	ContributionAnnual        float64
	ContributionGrowthPercent float64

	Debt       bool
	Amortizing bool
	TermYears  int

	// Real estate.
	LiquidateAtEnd     bool
	RentalYieldPercent float64
}

// ActiveIn reports whether the position is in its active phase during year.
func (b *Balance) ActiveIn(year int) bool {
	return year >= b.StartYear && year <= b.EndYear
}

// ValueAt is the position's appreciated value in year, ignoring
// contributions. Used for rental income and liquidation proceeds.
func (b *Balance) ValueAt(year int) float64 {
	return compound(b.Initial, b.RatePercent, year-b.StartYear)
}

// ContributionAt is the contribution added during year, or 0 outside the
// active phase.
func (b *Balance) ContributionAt(year int) float64 {
	if !b.ActiveIn(year) {
		return 0
	}

	return compound(b.ContributionAnnual, b.ContributionGrowthPercent, year-b.StartYear)
}

// Set is the normalizer's output: the instruments each projector folds over.
type Set struct {
	Flows    []Flow
	Balances []Balance
}

func compound(base, ratePercent float64, elapsed int) float64 {
	if elapsed <= 0 {
		return base
	}

	return base * math.Pow(1+ratePercent/100, float64(elapsed))
}
