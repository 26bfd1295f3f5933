package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dydtjq94/lycon-engine/internal/instrument"
	"github.com/dydtjq94/lycon-engine/internal/profile"
	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

type projectionState int

const (
	projectionStateForm projectionState = iota
	projectionStateTable
)

// ProjectionModel runs a full what-if projection from a handful of
// assumptions typed into a form: no database, everything in memory.
type ProjectionModel struct {
	CommonModel

	state projectionState
	form  *huh.Form
	table table.Model

	birthYear      string
	retirementAge  string
	monthlyIncome  string
	monthlyExpense string
	savingsBalance string
	monthlySaving  string
	returnRate     string
	target         string

	metrics simulation.Metrics
	summary simulation.Summary
	err     error
}

func NewProjectionModel() ProjectionModel {
	columns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Age", Width: 5},
		{Title: "Cash Flow", Width: 12},
		{Title: "Assets", Width: 12},
		{Title: "Debt", Width: 12},
		{Title: "Net Assets", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := ProjectionModel{
		table:          t,
		birthYear:      "1985",
		retirementAge:  "60",
		monthlyIncome:  "450",
		monthlyExpense: "300",
		savingsBalance: "8000",
		monthlySaving:  "100",
		returnRate:     "4.0",
		target:         "100000",
	}

	m.form = m.buildForm()

	return m
}

func (m ProjectionModel) Title() string { return "Retirement Projection" }

func (m ProjectionModel) ShortHelp() string {
	if m.state == projectionStateTable {
		return "↑/↓: scroll | Enter: edit inputs | Esc: back to menu"
	}

	return "Esc: back | Enter: next field"
}

func (m ProjectionModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ProjectionModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("birthYear").
				Title("Birth year").
				Validate(ValidateInt).
				Value(&m.birthYear),
			huh.NewInput().
				Key("retirementAge").
				Title("Retirement age").
				Validate(ValidateInt).
				Value(&m.retirementAge),
			huh.NewInput().
				Key("income").
				Title("Monthly income (manwon)").
				Validate(ValidateAmount).
				Value(&m.monthlyIncome),
			huh.NewInput().
				Key("expense").
				Title("Monthly living expense (manwon)").
				Validate(ValidateAmount).
				Value(&m.monthlyExpense),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("balance").
				Title("Savings balance today (manwon)").
				Validate(ValidateAmount).
				Value(&m.savingsBalance),
			huh.NewInput().
				Key("saving").
				Title("Monthly saving (manwon)").
				Validate(ValidateAmount).
				Value(&m.monthlySaving),
			huh.NewInput().
				Key("return").
				Title("Expected return (%/yr)").
				Validate(ValidateAmount).
				Value(&m.returnRate),
			huh.NewInput().
				Key("target").
				Title("Target net assets (manwon)").
				Validate(ValidateAmount).
				Value(&m.target),
		),
	)
}

func (m ProjectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.table.SetHeight(sizeMsg.Height - 12)
		return m, nil
	}

	switch m.state {
	case projectionStateForm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.err = m.project()
		m.state = projectionStateTable
		m.table.Focus()

		return m, nil

	case projectionStateTable:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
			m.state = projectionStateForm
			m.form = m.buildForm()

			return m, m.form.Init()
		}

		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *ProjectionModel) project() error {
	birthYear, err := strconv.Atoi(m.form.GetString("birthYear"))
	if err != nil {
		return err
	}

	retirementAge, err := strconv.Atoi(m.form.GetString("retirementAge"))
	if err != nil {
		return err
	}

	income, err := ParseAmount(m.form.GetString("income"))
	if err != nil {
		return err
	}

	expense, err := ParseAmount(m.form.GetString("expense"))
	if err != nil {
		return err
	}

	balance, err := ParseAmount(m.form.GetString("balance"))
	if err != nil {
		return err
	}

	saving, err := ParseAmount(m.form.GetString("saving"))
	if err != nil {
		return err
	}

	rate, err := ParseAmount(m.form.GetString("return"))
	if err != nil {
		return err
	}

	target, err := ParseAmount(m.form.GetString("target"))
	if err != nil {
		return err
	}

	p := &profile.Profile{
		Name:            "what-if",
		BirthYear:       birthYear,
		RetirementAge:   retirementAge,
		TargetNetAssets: target,
	}

	currentYear := time.Now().Year()
	retirementYear := p.RetirementYear()

	records := []*instrument.Record{
		{
			Kind:    instrument.KindIncome,
			Title:   "근로소득",
			Amount:  &income,
			Basis:   instrument.BasisMonthly,
			EndYear: retirementYear,
		},
		{
			Kind:   instrument.KindExpense,
			Title:  "생활비",
			Amount: &expense,
			Basis:  instrument.BasisMonthly,
		},
		{
			Kind:                instrument.KindSaving,
			Title:               "저축",
			Amount:              &saving,
			Basis:               instrument.BasisMonthly,
			CurrentValue:        &balance,
			InterestRatePercent: rate,
			EndYear:             retirementYear,
		},
	}

	norm := instrument.Normalize(instrument.HorizonInput{
		BirthYear:   birthYear,
		CurrentYear: currentYear,
		FinalYear:   p.DeathYear(),
	}, records)

	result := simulation.Project(simulation.Input{
		Profile:     p,
		Set:         norm.Set,
		CurrentYear: currentYear,
	})

	m.metrics = simulation.ComputeMetrics(p, result)
	m.summary = simulation.BuildSummary(p, result, m.metrics)

	rows := make([]table.Row, 0, len(result.Assets))
	for i, entry := range result.Assets {
		var net float64
		if i < len(result.CashFlow) {
			net = result.CashFlow[i].NetAmount
		}

		rows = append(rows, table.Row{
			strconv.Itoa(entry.Year),
			strconv.Itoa(entry.Age),
			FormatManwon(net),
			FormatManwon(entry.TotalAssets),
			FormatManwon(entry.TotalDebt),
			FormatManwon(entry.NetAssets),
		})
	}

	m.table.SetRows(rows)
	m.table.SetCursor(0)

	return nil
}

var summaryStyle = lipgloss.NewStyle().Faint(true)

func (m ProjectionModel) View() string {
	if m.state == projectionStateForm {
		return m.form.View()
	}

	if m.err != nil {
		return resultStyle.Render(fmt.Sprintf("error: %v", m.err))
	}

	header := summaryStyle.Render(fmt.Sprintf(
		"At retirement: %s | Achievement: %.0f%% | CAGR: %.1f%% | Emergency fund: %.1f months",
		FormatManwon(m.summary.RetirementNetAssets),
		m.metrics.AchievementRatePercent,
		m.metrics.CAGRPercent,
		m.metrics.EmergencyFundMonths,
	))

	return header + "\n" + lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())
}
