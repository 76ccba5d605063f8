package compare

import (
	"github.com/gocarina/gocsv"
	"github.com/rgehrsitz/wonpay/internal/domain"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// csvRow is the CSV record layout of one scenario.
type csvRow struct {
	Scenario            string `csv:"Scenario"`
	Type                string `csv:"Type"`
	Description         string `csv:"Description"`
	WorkerCount         int    `csv:"Workers"`
	HourlyWage          string `csv:"Hourly Wage"`
	EmployerTotalCost   string `csv:"Employer Total Cost"`
	WorkerNetTotal      string `csv:"Worker Net Total"`
	NeededMonthlySales  string `csv:"Hire Needed Sales"`
	BreakEvenSales      string `csv:"Break-even Sales"`
	EmployerCostDiff    string `csv:"Employer Cost Diff"`
	EmployerCostPctDiff string `csv:"Employer Cost % Change"`
	WorkerNetDiff       string `csv:"Worker Net Diff"`
}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var rows []*csvRow
	if compSet.BaseResult != nil {
		rows = append(rows, cf.formatRow(compSet.BaseResult, "base"))
	}
	for i := range compSet.AlternativeResults {
		rows = append(rows, cf.formatRow(&compSet.AlternativeResults[i], "alternative"))
	}
	return gocsv.MarshalString(&rows)
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) *csvRow {
	return &csvRow{
		Scenario:            result.ScenarioName,
		Type:                scenarioType,
		Description:         result.Description,
		WorkerCount:         result.WorkerCount,
		HourlyWage:          result.HourlyWage.StringFixed(0),
		EmployerTotalCost:   result.EmployerTotalCost.StringFixed(0),
		WorkerNetTotal:      result.WorkerNetTotal.StringFixed(0),
		NeededMonthlySales:  amountCell(result.NeededMonthlySales),
		BreakEvenSales:      amountCell(result.BreakEvenSales),
		EmployerCostDiff:    result.EmployerCostDiff.StringFixed(0),
		EmployerCostPctDiff: result.EmployerCostPctDiff.StringFixed(2),
		WorkerNetDiff:       result.WorkerNetDiff.StringFixed(0),
	}
}

// amountCell leaves undefined amounts blank.
func amountCell(a domain.Amount) string {
	if !a.IsDefined() {
		return ""
	}
	return a.Value.StringFixed(0)
}
