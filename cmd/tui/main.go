package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dydtjq94/lycon-engine/cmd/tui/internal/view"
)

// The TUI is a standalone planning scratchpad: everything is computed in
// memory, nothing is persisted.
type model struct {
	currentView View

	calculatorView view.CalculatorModel
	projectionView view.ProjectionModel
}

type View int

const (
	ViewMenu       View = 0
	ViewCalculator View = 1
	ViewProjection View = 2
)

func initialModel() model {
	return model{
		currentView:    ViewMenu,
		calculatorView: view.NewCalculatorModel(),
		projectionView: view.NewProjectionModel(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCalculator
				m.calculatorView = view.NewCalculatorModel()

				return m, m.calculatorView.Init()
			case "2":
				m.currentView = ViewProjection
				m.projectionView = view.NewProjectionModel()

				return m, m.projectionView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewCalculator:
		var newModel tea.Model
		newModel, cmd = m.calculatorView.Update(msg)
		m.calculatorView = newModel.(view.CalculatorModel)
	case ViewProjection:
		var newModel tea.Model
		newModel, cmd = m.projectionView.Update(msg)
		m.projectionView = newModel.(view.ProjectionModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Lycon Planner\n\n" +
				"1. Quick Calculator\n" +
				"2. Retirement Projection\n\n" +
				"q. Quit",
		)
	case ViewCalculator:
		return m.calculatorView.View()
	case ViewProjection:
		return m.projectionView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
