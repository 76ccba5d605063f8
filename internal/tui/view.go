package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
	"github.com/rgehrsitz/wonpay/internal/tui/components"
	"github.com/rgehrsitz/wonpay/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderApp(m.renderError())
	}

	var content string
	switch m.currentScene {
	case SceneCalculator:
		content = m.renderCalculator()
	case SceneSimulation:
		content = m.renderSimulation()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}
	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("wonpay · 인건비 계산기")
	breadcrumb := SubtitleStyle.Render(fmt.Sprintf("%s / %s / %d명", m.currentScene, m.input.Industry.Label(), m.input.WorkerCount))
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

func (m Model) renderStatusBar() string {
	lines := []string{}
	if m.status != "" {
		lines = append(lines, InfoStyle.Render(m.status))
	}
	lines = append(lines, m.help.ShortHelpView(m.keys.ShortHelp()))
	return StatusBarStyle.Width(max(m.width-2, 20)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderError() string {
	return ErrorStyle.Render(fmt.Sprintf("오류: %v\n\n아무 키나 누르면 계속합니다.", m.err))
}

// renderCalculator shows the form next to the metric cards.
func (m Model) renderCalculator() string {
	form := ActiveBorderStyle.Render(m.renderForm())
	return lipgloss.JoinHorizontal(lipgloss.Top, form, " ", m.renderMetrics())
}

func (m Model) renderForm() string {
	var rows []string
	for c := control(0); c < controlCount; c++ {
		switch {
		case c == ctrlIndustry:
			rows = append(rows, m.renderIndustry())
		case m.toggles[c] != nil:
			rows = append(rows, m.toggles[c].Render())
		default:
			rows = append(rows, m.sliders[c].Render())
		}
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderIndustry() string {
	focused := m.focused == ctrlIndustry
	label := tuistyles.ParameterLabelStyle
	if focused {
		label = label.Foreground(tuistyles.ColorPrimary)
	}
	var opts []string
	for _, ind := range domain.Industries {
		if ind == m.input.Industry {
			style := tuistyles.ParameterValueStyle
			if focused {
				style = style.Foreground(tuistyles.ColorAccent)
			}
			opts = append(opts, style.Render("‹"+ind.Label()+"›"))
			continue
		}
		opts = append(opts, SubtitleStyle.Render(ind.Label()))
	}
	return label.Render("업종") + "  " + strings.Join(opts, " ")
}

func (m Model) renderMetrics() string {
	r := m.result

	employer := components.NewMetricCard("사업주 총 인건비", output.FormatWon(r.EmployerTotalCost)).
		WithDescription("시간당 " + output.FormatWon(r.EmployerImpliedHourlyCost))
	net := components.NewMetricCard("근로자 실수령 합계", output.FormatWon(r.WorkerNetTotal)).
		WithDescription("세전 " + output.FormatWon(r.WorkerGrossTotal))
	hire := components.NewMetricCard("1명 더 채용하려면", output.FormatAmount(r.HireThreshold.NeededMonthlySales)).
		WithDescription("일매출 " + output.FormatAmount(r.HireThreshold.NeededDailySales))
	bep := components.NewMetricCard("손익분기 월매출", output.FormatAmount(m.linked.BreakEvenSales)).
		WithDescription("목표 매출 시 이익 " + output.FormatWon(m.linked.ProfitAtTarget))
	if prev := m.previous; prev != nil {
		withDelta(employer, prev.EmployerTotalCost, r.EmployerTotalCost, false)
		withDelta(net, prev.WorkerNetTotal, r.WorkerNetTotal, true)
	}

	share := components.NewShareBar("목표 매출 대비 인건비", r.EmployerTotalCost, r.Input.TargetSales).WithWidth(30)

	parts := []string{components.MetricGrid([]*components.MetricCard{employer, net, hire, bep}, 2), share.Render()}
	if notes := output.LaborCostView(r).Notes; len(notes) > 0 {
		parts = append(parts, InfoStyle.Render(strings.Join(notes, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// withDelta adds the change since the previous calculation. upIsGood picks the color.
func withDelta(card *components.MetricCard, before, after decimal.Decimal, upIsGood bool) {
	d := after.Sub(before).Round(0)
	if d.IsZero() {
		return
	}
	up := d.IsPositive()
	sign := ""
	if up {
		sign = "+"
	}
	card.WithTrend(up, up == upIsGood, sign+output.FormatWon(d))
}

// renderSimulation shows the workload table and the employer cost breakdown.
func (m Model) renderSimulation() string {
	view := output.LaborCostView(m.result)
	var parts []string
	for _, t := range view.Tables {
		parts = append(parts, TitleStyle.Render(t.Title), renderTable(t))
	}

	items := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)).
		Headers("사업주 부담 항목", "금액").
		StyleFunc(cellStyle)
	for _, l := range view.Section(output.SectionEmployer) {
		items.Row(l.Label, l.Display)
	}
	parts = append(parts, TitleStyle.Render("사업주 부담 내역"), items.String())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderTable(t output.Table) string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)).
		Headers(headers...).
		StyleFunc(cellStyle)
	for i := range t.Rows {
		row := make([]string, len(t.Columns))
		for j := range t.Columns {
			row[j] = t.Display(i, j)
		}
		tbl.Row(row...)
	}
	return tbl.String()
}

func cellStyle(row, col int) lipgloss.Style {
	if row == table.HeaderRow {
		return TableHeaderStyle
	}
	if col == 0 {
		return TableCellStyle.Foreground(tuistyles.ColorMuted)
	}
	return TableCellStyle.Align(lipgloss.Right)
}

func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true
	text := strings.Join([]string{
		"위·아래로 항목을 고르고 좌·우로 값을 바꿉니다. 값을 바꿀 때마다 다시 계산합니다.",
		"업종을 바꾸면 산재보험료율이 업종 기본값으로 바뀝니다.",
		"산재보험료율을 직접 바꾼 뒤에는 업종을 바꿔도 그 값이 유지됩니다.",
		"",
		h.View(m.keys),
	}, "\n")
	return BorderStyle.Render(text)
}
