package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
	"github.com/rgehrsitz/wonpay/internal/tui/components"
)

// control identifies one input of the calculator form, in display order.
type control int

const (
	ctrlHourlyWage control = iota
	ctrlMonthlyHours
	ctrlWorkers
	ctrlOvertime
	ctrlIndustry
	ctrlIndustrialRate
	ctrlVariableRate
	ctrlHoliday
	ctrlInsurance
	ctrlSeverance
	controlCount
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	ratesPath string
	engine    *calculation.Engine

	// input is the labor cost input being edited; result and linked are
	// recomputed after every change.
	input    domain.LaborCostInput
	result   domain.LaborCostResult
	linked   domain.BEPResult
	previous *domain.LaborCostResult

	sliders map[control]*components.ParameterSlider
	toggles map[control]*components.Toggle
	focused control

	keys keyMap
	help help.Model

	status string
	err    error
}

// NewModel creates the calculator seeded with input. A non-empty ratesPath is
// loaded by Init and replaces the built-in rates.
func NewModel(input domain.LaborCostInput, ratesPath string) Model {
	m := Model{
		currentScene: SceneCalculator,
		width:        100,
		height:       40,
		ratesPath:    ratesPath,
		engine:       calculation.NewEngine(),
		input:        input,
		keys:         defaultKeyMap(),
		help:         help.New(),
	}
	m.buildControls()
	m.recompute()
	m.previous = nil
	return m
}

// Init loads the rate table, if one was given.
func (m Model) Init() tea.Cmd {
	if m.ratesPath == "" {
		return nil
	}
	return loadRatesCmd(m.ratesPath)
}

// loadRatesCmd returns a command that loads a rate table
func loadRatesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		rates, err := config.NewInputParser().LoadRates(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RatesLoadedMsg{Rates: rates, Path: path}
	}
}

func (m *Model) buildControls() {
	won := output.FormatWon
	hours := output.FormatHours
	pct := output.FormatPercent
	count := func(d decimal.Decimal) string { return d.StringFixed(0) + "명" }

	m.sliders = map[control]*components.ParameterSlider{
		ctrlHourlyWage: components.NewParameterSlider("시급", m.input.HourlyWage,
			decimal.Zero, decimal.NewFromInt(50_000), decimal.NewFromInt(100)).
			WithFormat(won).
			WithDescription(fmt.Sprintf("최저시급 %s", won(m.engine.Rates.MinimumHourlyWage))),
		ctrlMonthlyHours: components.NewParameterSlider("월 근로시간", m.input.MonthlyHours,
			decimal.Zero, decimal.NewFromInt(400), decimal.NewFromInt(1)).
			WithFormat(hours).
			WithDescription("주 40시간 근무는 월 209시간입니다."),
		ctrlWorkers: components.NewParameterSlider("근로자 수", decimal.NewFromInt(int64(m.input.WorkerCount)),
			decimal.NewFromInt(1), decimal.NewFromInt(50), decimal.NewFromInt(1)).
			WithFormat(count),
		ctrlOvertime: components.NewParameterSlider("월 연장근로", m.input.MonthlyOvertimeHours,
			decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(1)).
			WithFormat(hours).
			WithDescription("연장근로 시간에는 50% 가산수당이 붙습니다."),
		ctrlIndustrialRate: components.NewParameterSlider("산재보험료율", m.input.IndustrialRate.Value,
			decimal.Zero, decimal.NewFromInt(10), decimal.RequireFromString("0.05")).
			WithFormat(pct).
			WithDescription("직접 바꾸면 업종을 바꿔도 유지됩니다. x: 업종 기본값으로"),
		ctrlVariableRate: components.NewParameterSlider("변동비율", m.input.VariableRatePercent,
			decimal.Zero, decimal.NewFromInt(100), decimal.NewFromInt(1)).
			WithFormat(pct).
			WithDescription("매출 대비 재료비 등 변동비 비율"),
	}
	m.toggles = map[control]*components.Toggle{
		ctrlHoliday:   components.NewToggle("주휴수당 포함", m.input.IncludeHolidayAllowance),
		ctrlInsurance: components.NewToggle("4대보험 포함", m.input.IncludeSocialInsurance),
		ctrlSeverance: components.NewToggle("퇴직금 적립 포함", m.input.IncludeSeverance),
	}
	m.setFocus(ctrlHourlyWage)
}

// recompute runs the calculator and keeps the resolved industrial rate, so the
// preset bookkeeping carries over to the next change.
func (m *Model) recompute() {
	prev := m.result
	m.previous = &prev
	m.result = m.engine.ComputeLaborCost(m.input)
	m.input.IndustrialRate = m.result.IndustrialRate
	m.linked = m.engine.ComputeBEP(m.result.BEPLink)
	if s, ok := m.sliders[ctrlIndustrialRate]; ok {
		s.SetValue(m.result.IndustrialRate.Value)
	}
}

func (m *Model) setFocus(c control) {
	m.focused = c
	for k, s := range m.sliders {
		s.SetFocused(k == c)
	}
	for k, t := range m.toggles {
		t.IsFocused = k == c
	}
}

func (m *Model) moveFocus(delta int) {
	next := (int(m.focused) + delta + int(controlCount)) % int(controlCount)
	m.setFocus(control(next))
}

// adjust moves the focused input one step.
func (m *Model) adjust(up bool) {
	m.status = ""
	switch m.focused {
	case ctrlIndustry:
		m.cycleIndustry(up)
	case ctrlHoliday, ctrlInsurance, ctrlSeverance:
		m.flip(m.focused)
		return
	default:
		s := m.sliders[m.focused]
		if up {
			s.Increment()
		} else {
			s.Decrement()
		}
		m.applySlider(m.focused, s.Value)
	}
	m.recompute()
}

func (m *Model) applySlider(c control, v decimal.Decimal) {
	switch c {
	case ctrlHourlyWage:
		m.input.HourlyWage = v
	case ctrlMonthlyHours:
		m.input.MonthlyHours = v
	case ctrlWorkers:
		m.input.WorkerCount = int(v.IntPart())
	case ctrlOvertime:
		m.input.MonthlyOvertimeHours = v
	case ctrlIndustrialRate:
		m.input.IndustrialRate = m.input.IndustrialRate.Edit(v)
	case ctrlVariableRate:
		m.input.VariableRatePercent = v
	}
}

func (m *Model) cycleIndustry(forward bool) {
	idx := 0
	for i, ind := range domain.Industries {
		if ind == m.input.Industry {
			idx = i
			break
		}
	}
	n := len(domain.Industries)
	if forward {
		idx = (idx + 1) % n
	} else {
		idx = (idx - 1 + n) % n
	}
	m.input.Industry = domain.Industries[idx]
	if m.input.IndustrialRate.UserEdited {
		m.status = "직접 입력한 산재보험료율을 유지합니다. x 키로 업종 기본값을 적용할 수 있습니다."
	}
}

func (m *Model) flip(c control) {
	t, ok := m.toggles[c]
	if !ok {
		return
	}
	on := t.Flip()
	switch c {
	case ctrlHoliday:
		m.input.IncludeHolidayAllowance = on
	case ctrlInsurance:
		m.input.IncludeSocialInsurance = on
	case ctrlSeverance:
		m.input.IncludeSeverance = on
	}
	m.recompute()
}

// resetIndustrialRate drops the manual rate so the industry preset applies again.
func (m *Model) resetIndustrialRate() {
	m.input.IndustrialRate = m.input.IndustrialRate.Reset()
	m.status = fmt.Sprintf("%s 기본 산재보험료율을 적용했습니다.", m.input.Industry.Label())
	m.recompute()
}

// Input returns the labor cost input as currently edited.
func (m Model) Input() domain.LaborCostInput {
	return m.input
}

// Result returns the latest labor cost result.
func (m Model) Result() domain.LaborCostResult {
	return m.result
}
