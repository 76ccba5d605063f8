package calculation

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeHourly converts an hourly wage and weekly schedule into weekly and
// monthly pay, including the weekly holiday allowance and overtime premium.
func (e *Engine) ComputeHourly(in domain.HourlyInput) domain.HourlyResult {
	in = sanitizeHourly(in)
	r := e.Rates

	paidPerDay := maxZero(in.HoursPerDay.Sub(in.BreakMinutesPerDay.Div(sixty)))
	weeklyPaid := paidPerDay.Mul(in.DaysPerWeek)

	holidayHours := decimal.Zero
	if holidayEligible(in.IncludeHolidayAllowance, weeklyPaid, r.HolidayThreshold()) && in.DaysPerWeek.GreaterThan(decimal.Zero) {
		holidayHours = weeklyPaid.Div(in.DaysPerWeek)
	}

	premium := in.OvertimeHoursPerWeek.Mul(in.HourlyWage).Mul(r.OvertimePremiumRate)
	overtimeBase := decimal.Zero
	if in.IncludeOvertimeBasePay {
		overtimeBase = in.OvertimeHoursPerWeek.Mul(in.HourlyWage)
	}

	holidayPay := holidayHours.Mul(in.HourlyWage)
	weeklyPay := weeklyPaid.Mul(in.HourlyWage).Add(holidayPay).Add(premium).Add(overtimeBase)

	res := domain.HourlyResult{
		Input:                     in,
		PaidHoursPerDay:           paidPerDay,
		WeeklyPaidHours:           weeklyPaid,
		HolidayHours:              holidayHours,
		HolidayPay:                holidayPay,
		OvertimePremium:           premium,
		OvertimeBasePay:           overtimeBase,
		WeeklyPay:                 weeklyPay,
		MonthlyPay:                weeklyPay.Mul(r.WeeksPerMonth),
		TotalWeeklyHoursDisplayed: weeklyPaid.Add(holidayHours).Add(in.OvertimeHoursPerWeek).Round(1),
		BelowMinimumWage:          in.HourlyWage.GreaterThan(decimal.Zero) && in.HourlyWage.LessThan(r.MinimumHourlyWage),
	}
	if res.BelowMinimumWage {
		e.Logger.Warnf("hourly: wage %s is below the minimum wage %s", in.HourlyWage, r.MinimumHourlyWage)
	}
	return res
}

// holidayEligible applies the weekly-hours threshold. A zero threshold accepts any
// positive weekly hours.
func holidayEligible(include bool, weeklyHours, threshold decimal.Decimal) bool {
	if !include || weeklyHours.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return weeklyHours.GreaterThanOrEqual(threshold)
}
