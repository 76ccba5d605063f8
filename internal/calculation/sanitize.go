package calculation

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	sixty    = decimal.NewFromInt(60)
	one      = decimal.NewFromInt(1)
	two      = decimal.NewFromInt(2)
	twelve   = decimal.NewFromInt(12)
	maxMoney = decimal.New(1, 13)
)

// clamp bounds v to [lo, hi]. A value whose exponent is too extreme to compare
// cheaply is normalized first; one too large to hold lands on the bound its sign
// points to.
func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	v, ok := domain.NormalizeScale(v)
	if !ok {
		if v.IsNegative() {
			return lo
		}
		return hi
	}
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func money(v decimal.Decimal) decimal.Decimal {
	return clamp(v, decimal.Zero, maxMoney)
}

func between(v decimal.Decimal, lo, hi int64) decimal.Decimal {
	return clamp(v, decimal.NewFromInt(lo), decimal.NewFromInt(hi))
}

func maxZero(v decimal.Decimal) decimal.Decimal {
	return decimal.Max(v, decimal.Zero)
}

func sanitizeBEP(in domain.BEPInput) domain.BEPInput {
	in.FixedCost = money(in.FixedCost)
	in.VariableRatePercent = between(in.VariableRatePercent, 0, 100)
	in.OpenDaysPerMonth = clampInt(in.OpenDaysPerMonth, 1, 31)
	in.HoursPerDay = between(in.HoursPerDay, 1, 24)
	in.TargetSales = money(in.TargetSales)
	return in
}

func sanitizeHourly(in domain.HourlyInput) domain.HourlyInput {
	in.HourlyWage = money(in.HourlyWage)
	in.HoursPerDay = between(in.HoursPerDay, 0, 24)
	in.DaysPerWeek = between(in.DaysPerWeek, 0, 7)
	in.BreakMinutesPerDay = between(in.BreakMinutesPerDay, 0, 600)
	in.OvertimeHoursPerWeek = between(in.OvertimeHoursPerWeek, 0, 80)
	return in
}

func sanitizeSalary(in domain.SalaryNetInput) domain.SalaryNetInput {
	in.GrossMonthlyPay = money(in.GrossMonthlyPay)
	in.DependentCount = clampInt(in.DependentCount, 1, 20)
	switch in.RatePreset {
	case domain.TaxPresetStandard, domain.TaxPresetLight, domain.TaxPresetHeavy:
	default:
		in.RatePreset = domain.TaxPresetStandard
	}
	if in.Method != domain.SalaryMethodSimple {
		in.Method = domain.SalaryMethodProgressive
	}
	return in
}

func sanitizeLaborCost(in domain.LaborCostInput) domain.LaborCostInput {
	in.HourlyWage = money(in.HourlyWage)
	in.MonthlyHours = between(in.MonthlyHours, 0, 744)
	in.WeeklyWorkDays = clampInt(in.WeeklyWorkDays, 1, 7)
	in.WorkerCount = clampInt(in.WorkerCount, 1, 1000)
	in.MonthlyOvertimeHours = between(in.MonthlyOvertimeHours, 0, 744)
	in.Industry = domain.ParseIndustry(string(in.Industry))
	in.IndustrialRate.Value = between(in.IndustrialRate.Value, 0, 99)
	in.EmployerDevelopmentLevyRatePercent = between(in.EmployerDevelopmentLevyRatePercent, 0, 99)
	in.VariableRatePercent = between(in.VariableRatePercent, 0, 100)
	in.OpenDays = clampInt(in.OpenDays, 1, 31)
	in.HoursPerDay = between(in.HoursPerDay, 1, 24)
	in.TargetSales = money(in.TargetSales)
	return in
}

func sanitizePriceDecision(in domain.PriceDecisionInput) domain.PriceDecisionInput {
	in.CurrentPrice = money(in.CurrentPrice)
	in.NewPrice = money(in.NewPrice)
	in.VariableCostPerUnit = money(in.VariableCostPerUnit)
	in.CurrentQuantity = money(in.CurrentQuantity)
	in.QuantityChangePercent = between(in.QuantityChangePercent, -100, 1000)
	in.FixedCost = money(in.FixedCost)
	return in
}
