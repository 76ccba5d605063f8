package tui

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneCalculator Scene = iota
	SceneSimulation
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneCalculator:
		return "인건비 계산"
	case SceneSimulation:
		return "근무량 시뮬레이션"
	case SceneHelp:
		return "도움말"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// RatesLoadedMsg carries a rate table read from disk.
type RatesLoadedMsg struct {
	Rates domain.Rates
	Path  string
}
