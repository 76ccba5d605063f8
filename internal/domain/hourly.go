package domain

import "github.com/shopspring/decimal"

// HourlyInput describes a part-time schedule paid by the hour.
type HourlyInput struct {
	HourlyWage              decimal.Decimal `yaml:"hourly_wage" json:"hourly_wage"`
	HoursPerDay             decimal.Decimal `yaml:"hours_per_day" json:"hours_per_day"`
	DaysPerWeek             decimal.Decimal `yaml:"days_per_week" json:"days_per_week"`
	BreakMinutesPerDay      decimal.Decimal `yaml:"break_minutes_per_day" json:"break_minutes_per_day"`
	OvertimeHoursPerWeek    decimal.Decimal `yaml:"overtime_hours_per_week" json:"overtime_hours_per_week"`
	IncludeHolidayAllowance bool            `yaml:"include_holiday_allowance" json:"include_holiday_allowance"`
	// IncludeOvertimeBasePay adds the 1.0x base pay for overtime hours on top of the premium.
	IncludeOvertimeBasePay bool `yaml:"include_overtime_base_pay" json:"include_overtime_base_pay"`
}

// HourlyResult is the output of the hourly wage calculator.
type HourlyResult struct {
	Input                     HourlyInput     `json:"input"`
	PaidHoursPerDay           decimal.Decimal `json:"paid_hours_per_day"`
	WeeklyPaidHours           decimal.Decimal `json:"weekly_paid_hours"`
	HolidayHours              decimal.Decimal `json:"holiday_hours"`
	HolidayPay                decimal.Decimal `json:"holiday_pay"`
	OvertimePremium           decimal.Decimal `json:"overtime_premium"`
	OvertimeBasePay           decimal.Decimal `json:"overtime_base_pay"`
	WeeklyPay                 decimal.Decimal `json:"weekly_pay"`
	MonthlyPay                decimal.Decimal `json:"monthly_pay"`
	TotalWeeklyHoursDisplayed decimal.Decimal `json:"total_weekly_hours_displayed"`
	BelowMinimumWage          bool            `json:"below_minimum_wage"`
}
