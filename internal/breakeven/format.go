package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/wonpay/internal/output"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

var targetLabels = map[OptimizationTarget]string{
	OptimizeHourlyWage:  "최대 시급",
	OptimizeWorkerCount: "최대 인원",
	OptimizeTargetSales: "필요 월매출",
}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("손익분기 역산 결과\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("대상:     %s (%s)\n", targetLabels[result.Request.Target], result.Request.Target))
	sb.WriteString(fmt.Sprintf("상태:     %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("반복 횟수: %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("수렴:     %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("결과\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	if result.OptimalHourlyWage != nil {
		sb.WriteString(fmt.Sprintf("최대 시급:        %s\n", output.FormatWon(*result.OptimalHourlyWage)))
	}
	if result.OptimalWorkerCount != nil {
		sb.WriteString(fmt.Sprintf("최대 인원:        %d명\n", *result.OptimalWorkerCount))
	}
	if result.RequiredSales != nil {
		sb.WriteString(fmt.Sprintf("필요 월매출:      %s\n", output.FormatWon(*result.RequiredSales)))
	}
	sb.WriteString(fmt.Sprintf("월매출:           %s\n", output.FormatWon(result.MonthlySales)))
	sb.WriteString(fmt.Sprintf("사업주 총 인건비: %s\n", output.FormatWon(result.EmployerTotalCost)))
	sb.WriteString(fmt.Sprintf("영업이익:         %s\n", output.FormatWon(result.OperatingProfit)))
	sb.WriteString(fmt.Sprintf("사장님 환산 시급: %s\n", output.FormatWon(result.OwnerHourlyWage)))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMultiDimensional formats the results of every target side by side
func (tf *TableFormatter) FormatMultiDimensional(result *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("손익분기 역산 요약\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-14s %16s %16s %16s\n", "target", "solved", "labor cost", "profit"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, res := range result.Results {
		sb.WriteString(fmt.Sprintf("%-14s %16s %16s %16s\n",
			res.Request.Target,
			tf.solvedValue(res),
			output.FormatNumber(res.EmployerTotalCost, 0),
			output.FormatNumber(res.OperatingProfit, 0)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("제안\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiDimensional formats multi-target results as JSON
func (jf *JSONFormatter) FormatMultiDimensional(result *MultiDimensionalResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ 수렴"
	}
	return "⚠ 수렴하지 않음"
}

func (tf *TableFormatter) solvedValue(res OptimizationResult) string {
	switch {
	case res.OptimalHourlyWage != nil:
		return output.FormatNumber(*res.OptimalHourlyWage, 0)
	case res.OptimalWorkerCount != nil:
		return fmt.Sprintf("%d", *res.OptimalWorkerCount)
	case res.RequiredSales != nil:
		return output.FormatNumber(*res.RequiredSales, 0)
	}
	return "-"
}
