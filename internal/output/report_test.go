package output

import (
	"testing"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleReport runs one scenario of every type.
func sampleReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "카페 손익분기", Type: domain.ScenarioBEP, BEP: &domain.BEPInput{
				FixedCost: dec("5200000"), VariableRatePercent: dec("38"), OpenDaysPerMonth: 26,
				HoursPerDay: dec("10"), TargetSales: dec("12000000"),
			}},
			{Name: "아르바이트 시급", Type: domain.ScenarioHourly, Hourly: &domain.HourlyInput{
				HourlyWage: dec("10030"), HoursPerDay: dec("7"), DaysPerWeek: dec("5"), IncludeHolidayAllowance: true,
			}},
			{Name: "월급 실수령", Type: domain.ScenarioSalary, Salary: &domain.SalaryNetInput{
				GrossMonthlyPay: dec("3000000"), DependentCount: 1, IncludeIncomeTax: true,
			}},
			{Name: "매장 인건비", Type: domain.ScenarioLaborCost, LaborCost: &domain.LaborCostInput{
				HourlyWage: dec("10030"), MonthlyHours: dec("209"), WeeklyWorkDays: 5, WorkerCount: 2,
				IncludeHolidayAllowance: true, IncludeSocialInsurance: true, IncludeSeverance: true,
				Industry: domain.IndustryCafe, VariableRatePercent: dec("35"), OpenDays: 26,
				HoursPerDay: dec("10"), TargetSales: dec("30000000"),
			}},
			{Name: "가격 인상", Type: domain.ScenarioPriceDecision, PriceDecision: &domain.PriceDecisionInput{
				CurrentPrice: dec("5000"), NewPrice: dec("5500"), VariableCostPerUnit: dec("2000"),
				CurrentQuantity: dec("1000"), QuantityChangePercent: dec("-10"), FixedCost: dec("1000000"),
			}},
		},
	}
	report, err := calculation.NewEngine().RunScenarios(cfg)
	require.NoError(t, err)
	require.Len(t, report.Results, 5)
	return report
}
