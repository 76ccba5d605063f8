package compare

import (
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single labor cost scenario with its key metrics
type ComparisonResult struct {
	ScenarioName string                  `json:"scenarioName"`
	Description  string                  `json:"description"`
	Result       *domain.LaborCostResult `json:"-"`

	// Key Metrics
	WorkerCount               int             `json:"workerCount"`
	HourlyWage                decimal.Decimal `json:"hourlyWage"`
	EmployerTotalCost         decimal.Decimal `json:"employerTotalCost"`
	WorkerNetTotal            decimal.Decimal `json:"workerNetTotal"`
	EmployerImpliedHourlyCost decimal.Decimal `json:"employerImpliedHourlyCost"`
	NeededMonthlySales        domain.Amount   `json:"neededMonthlySales"`
	BreakEvenSales            domain.Amount   `json:"breakEvenSales"`

	// Comparison to Base
	EmployerCostDiff    decimal.Decimal `json:"employerCostDiff"`
	EmployerCostPctDiff decimal.Decimal `json:"employerCostPctDiff"`
	WorkerNetDiff       decimal.Decimal `json:"workerNetDiff"`
	NeededSalesDiff     domain.Amount   `json:"neededSalesDiff"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from labor cost results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a labor cost result.
// linked is the break-even analysis fed by the result's employer cost.
func (mc *MetricsCalculator) CalculateMetrics(name string, res domain.LaborCostResult, linked domain.BEPResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:              name,
		Result:                    &res,
		WorkerCount:               res.Input.WorkerCount,
		HourlyWage:                res.Input.HourlyWage,
		EmployerTotalCost:         res.EmployerTotalCost,
		WorkerNetTotal:            res.WorkerNetTotal,
		EmployerImpliedHourlyCost: res.EmployerImpliedHourlyCost,
		NeededMonthlySales:        res.HireThreshold.NeededMonthlySales,
		BreakEvenSales:            linked.BreakEvenSales,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.EmployerCostDiff = scenario.EmployerTotalCost.Sub(base.EmployerTotalCost)
	if !base.EmployerTotalCost.IsZero() {
		scenario.EmployerCostPctDiff = scenario.EmployerCostDiff.
			Div(base.EmployerTotalCost).
			Mul(decimal.NewFromInt(100))
	}
	scenario.WorkerNetDiff = scenario.WorkerNetTotal.Sub(base.WorkerNetTotal)

	scenario.NeededSalesDiff = domain.Undefined()
	if scenario.NeededMonthlySales.IsDefined() && base.NeededMonthlySales.IsDefined() {
		scenario.NeededSalesDiff = domain.NewAmount(scenario.NeededMonthlySales.Value.Sub(base.NeededMonthlySales.Value))
	}
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Cheapest for the employer
	cheapest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.EmployerTotalCost.LessThan(cheapest.EmployerTotalCost) {
			cheapest = alt
		}
	}
	if cheapest != base {
		saving := base.EmployerTotalCost.Sub(cheapest.EmployerTotalCost)
		recommendations = append(recommendations,
			fmt.Sprintf("인건비 최소: %s 적용 시 사업주 부담이 월 %s 줄어듭니다.", cheapest.ScenarioName, output.FormatWon(saving)))
	}

	// Best for the workers
	bestNet := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.WorkerNetTotal.GreaterThan(bestNet.WorkerNetTotal) {
			bestNet = alt
		}
	}
	if bestNet != base {
		gain := bestNet.WorkerNetTotal.Sub(base.WorkerNetTotal)
		recommendations = append(recommendations,
			fmt.Sprintf("실수령 최대: %s 적용 시 근로자 실수령 합계가 월 %s 늘어납니다.", bestNet.ScenarioName, output.FormatWon(gain)))
	}

	// Most expensive change in sales terms
	var costliest *ComparisonResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.EmployerCostDiff.IsPositive() {
			continue
		}
		if costliest == nil || alt.EmployerCostDiff.GreaterThan(costliest.EmployerCostDiff) {
			costliest = alt
		}
	}
	if costliest != nil && costliest.BreakEvenSales.IsDefined() && base.BreakEvenSales.IsDefined() {
		extra := costliest.BreakEvenSales.Value.Sub(base.BreakEvenSales.Value)
		recommendations = append(recommendations,
			fmt.Sprintf("부담 최대: %s 적용 시 손익분기 월매출이 %s 높아집니다.", costliest.ScenarioName, output.FormatWon(extra)))
	}

	return recommendations
}
