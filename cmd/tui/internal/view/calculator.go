package view

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

type calculatorState int

const (
	calculatorStateForm calculatorState = iota
	calculatorStateResult
)

// CalculatorModel is the quick closed-form calculator: one pot of assets,
// one savings stream, flat rates.
type CalculatorModel struct {
	CommonModel

	state calculatorState
	form  *huh.Form

	currentAssets string
	annualSavings string
	returnRate    string
	savingsGrowth string
	years         string

	result simulation.CalculatorResult
	err    error
}

func NewCalculatorModel() CalculatorModel {
	m := CalculatorModel{
		currentAssets: "10000",
		annualSavings: "2400",
		returnRate:    "4.0",
		savingsGrowth: "2.0",
		years:         "20",
	}

	m.form = m.buildForm()

	return m
}

func (m CalculatorModel) Title() string { return "Quick Calculator" }

func (m CalculatorModel) ShortHelp() string {
	if m.state == calculatorStateResult {
		return "Enter: edit inputs | Esc: back to menu"
	}

	return "Esc: back | Enter: next field"
}

func (m CalculatorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m CalculatorModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("assets").
				Title("Current assets (manwon)").
				Validate(ValidateAmount).
				Value(&m.currentAssets),
			huh.NewInput().
				Key("savings").
				Title("Annual savings (manwon)").
				Validate(ValidateAmount).
				Value(&m.annualSavings),
			huh.NewInput().
				Key("return").
				Title("Expected return (%/yr)").
				Validate(ValidateAmount).
				Value(&m.returnRate),
			huh.NewInput().
				Key("growth").
				Title("Savings growth (%/yr)").
				Validate(ValidateAmount).
				Value(&m.savingsGrowth),
			huh.NewInput().
				Key("years").
				Title("Years to retirement").
				Validate(ValidateInt).
				Value(&m.years),
		),
	)
}

func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	switch m.state {
	case calculatorStateForm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.result, m.err = m.calculate()
		m.state = calculatorStateResult

		return m, nil

	case calculatorStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEnter {
			m.state = calculatorStateForm
			m.form = m.buildForm()

			return m, m.form.Init()
		}
	}

	return m, nil
}

func (m CalculatorModel) calculate() (simulation.CalculatorResult, error) {
	assets, err := ParseAmount(m.form.GetString("assets"))
	if err != nil {
		return simulation.CalculatorResult{}, err
	}

	savings, err := ParseAmount(m.form.GetString("savings"))
	if err != nil {
		return simulation.CalculatorResult{}, err
	}

	returnRate, err := ParseAmount(m.form.GetString("return"))
	if err != nil {
		return simulation.CalculatorResult{}, err
	}

	growth, err := ParseAmount(m.form.GetString("growth"))
	if err != nil {
		return simulation.CalculatorResult{}, err
	}

	years, err := strconv.Atoi(m.form.GetString("years"))
	if err != nil {
		return simulation.CalculatorResult{}, err
	}

	return simulation.Calculate(simulation.CalculatorInput{
		CurrentAssets:        assets,
		AnnualSavings:        savings,
		ReturnRatePercent:    returnRate,
		SavingsGrowthPercent: growth,
		YearsToRetirement:    years,
	}), nil
}

var resultStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

func (m CalculatorModel) View() string {
	if m.state == calculatorStateForm {
		return m.form.View()
	}

	if m.err != nil {
		return resultStyle.Render(fmt.Sprintf("error: %v", m.err))
	}

	return resultStyle.Render(fmt.Sprintf(
		"Projected assets at retirement: %s\nSustainable monthly income:     %s",
		FormatManwon(m.result.RetirementAssets),
		FormatManwon(m.result.MonthlyIncome),
	))
}
