package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/wonpay/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("인건비 시나리오 비교\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("기준 시나리오: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("입력 파일: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %6s %*s %*s %*s\n",
		nameWidth, "scenario",
		"staff",
		numWidth, "employer cost",
		numWidth, "worker net",
		numWidth, "hire sales"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\n기준 대비 변화\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			name := alt.ScenarioName
			if alt.Description != "" {
				name += " (" + alt.Description + ")"
			}
			sb.WriteString(fmt.Sprintf("\n%s:\n", name))
			sb.WriteString(fmt.Sprintf("  사업주 총 인건비: %s (%s%%)\n",
				tf.signedWon(alt.EmployerCostDiff), alt.EmployerCostPctDiff.StringFixed(1)))
			if !alt.WorkerNetDiff.IsZero() {
				sb.WriteString(fmt.Sprintf("  근로자 실수령 합계: %s\n", tf.signedWon(alt.WorkerNetDiff)))
			}
			if alt.NeededSalesDiff.IsDefined() && !alt.NeededSalesDiff.Value.IsZero() {
				sb.WriteString(fmt.Sprintf("  추가 채용 필요 매출: %s\n", tf.signedWon(alt.NeededSalesDiff.Value)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\n제안\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	needed := "n/a"
	if result.NeededMonthlySales.IsDefined() {
		needed = output.FormatNumber(result.NeededMonthlySales.Value, 0)
	}

	return fmt.Sprintf("%-*s %6d %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		result.WorkerCount,
		numWidth, output.FormatNumber(result.EmployerTotalCost, 0),
		numWidth, output.FormatNumber(result.WorkerNetTotal, 0),
		numWidth, needed)
}

// signedWon formats a delta with an explicit plus sign for increases
func (tf *TableFormatter) signedWon(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + output.FormatWon(d)
	}
	return output.FormatWon(d)
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary of employer cost changes
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.EmployerCostDiff.IsZero() {
			change = tf.signedWon(alt.EmployerCostDiff)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
