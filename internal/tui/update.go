package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/output"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case RatesLoadedMsg:
		m.engine = calculation.NewEngineWithRates(msg.Rates)
		m.sliders[ctrlHourlyWage].WithDescription(fmt.Sprintf("최저시급 %s", output.FormatWon(m.engine.Rates.MinimumHourlyWage)))
		m.status = fmt.Sprintf("요율표 %s 를 적용했습니다.", msg.Path)
		m.recompute()
		m.previous = nil
		return m, nil
	}
	return m, nil
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: s} }
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		if m.currentScene == SceneHelp {
			return m, navigate(m.previousScene)
		}
		return m, navigate(SceneHelp)

	case key.Matches(msg, m.keys.Back):
		if m.currentScene != SceneCalculator {
			return m, navigate(SceneCalculator)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextScene):
		if m.currentScene == SceneCalculator {
			return m, navigate(SceneSimulation)
		}
		return m, navigate(SceneCalculator)
	}

	if m.currentScene != SceneCalculator {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Left):
		m.adjust(false)
	case key.Matches(msg, m.keys.Right):
		m.adjust(true)
	case key.Matches(msg, m.keys.Toggle):
		m.flip(m.focused)
	case key.Matches(msg, m.keys.ResetRate):
		m.resetIndustrialRate()
	}
	return m, nil
}
