package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/wonpay/internal/output"
	"github.com/rgehrsitz/wonpay/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ShareBar shows one amount as a share of another, such as labor cost as a
// share of monthly sales. The bar turns red past Warn.
type ShareBar struct {
	Label string
	Part  decimal.Decimal
	Whole decimal.Decimal
	Warn  decimal.Decimal // percent
	Width int
}

// NewShareBar creates a share bar.
func NewShareBar(label string, part, whole decimal.Decimal) *ShareBar {
	return &ShareBar{
		Label: label,
		Part:  part,
		Whole: whole,
		Warn:  decimal.NewFromInt(30),
		Width: 40,
	}
}

// WithWidth sets the bar width
func (b *ShareBar) WithWidth(width int) *ShareBar {
	b.Width = width
	return b
}

// Percentage returns Part/Whole in percent, or false when Whole is not positive.
func (b *ShareBar) Percentage() (decimal.Decimal, bool) {
	if b.Whole.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, false
	}
	return b.Part.Div(b.Whole).Mul(decimal.NewFromInt(100)), true
}

// Render returns the styled bar.
func (b *ShareBar) Render() string {
	var content strings.Builder
	if b.Label != "" {
		content.WriteString(tuistyles.MetricLabelStyle.Render(b.Label))
		content.WriteString("\n")
	}

	pct, ok := b.Percentage()
	if !ok {
		content.WriteString(tuistyles.SubtitleStyle.Render(output.NotComputable))
		return content.String()
	}

	filled := int(pct.Mul(decimal.NewFromInt(int64(b.Width))).Div(decimal.NewFromInt(100)).IntPart())
	if filled > b.Width {
		filled = b.Width
	}
	if filled < 0 {
		filled = 0
	}

	barColor := tuistyles.ColorSuccess
	if pct.GreaterThan(b.Warn) {
		barColor = tuistyles.ColorDanger
	}
	content.WriteString("[")
	content.WriteString(lipgloss.NewStyle().Foreground(barColor).Render(strings.Repeat("█", filled)))
	content.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("░", b.Width-filled)))
	content.WriteString("] ")
	content.WriteString(tuistyles.MetricValueStyle.Render(output.FormatPercent(pct)))
	return content.String()
}
