package domain

import "github.com/shopspring/decimal"

// LaborCostInput describes the staff a store employs and how its sales behave.
type LaborCostInput struct {
	HourlyWage              decimal.Decimal `yaml:"hourly_wage" json:"hourly_wage"`
	MonthlyHours            decimal.Decimal `yaml:"monthly_hours" json:"monthly_hours"`
	WeeklyWorkDays          int             `yaml:"weekly_work_days" json:"weekly_work_days"`
	WorkerCount             int             `yaml:"worker_count" json:"worker_count"`
	IncludeHolidayAllowance bool            `yaml:"include_holiday_allowance" json:"include_holiday_allowance"`
	MonthlyOvertimeHours    decimal.Decimal `yaml:"monthly_overtime_hours" json:"monthly_overtime_hours"`
	IncludeSocialInsurance  bool            `yaml:"include_social_insurance" json:"include_social_insurance"`
	IncludeSeverance        bool            `yaml:"include_severance" json:"include_severance"`

	Industry       Industry  `yaml:"industry" json:"industry"`
	IndustrialRate RateField `yaml:"industrial_rate" json:"industrial_rate"`
	// EmployerDevelopmentLevyRatePercent is the employment stability and vocational
	// development levy paid only by the employer.
	EmployerDevelopmentLevyRatePercent decimal.Decimal `yaml:"employer_development_levy_rate_percent" json:"employer_development_levy_rate_percent"`

	// Pass-through fields for the break-even link.
	VariableRatePercent decimal.Decimal `yaml:"variable_rate_percent" json:"variable_rate_percent"`
	OpenDays            int             `yaml:"open_days" json:"open_days"`
	HoursPerDay         decimal.Decimal `yaml:"hours_per_day" json:"hours_per_day"`
	TargetSales         decimal.Decimal `yaml:"target_sales" json:"target_sales"`
}

// WorkerCost holds the per-worker monthly figures of one labor cost run.
type WorkerCost struct {
	BasePay           decimal.Decimal `json:"base_pay"`
	WeeklyHours       decimal.Decimal `json:"weekly_hours"`
	HolidayPay        decimal.Decimal `json:"holiday_pay"`
	PremiumPay        decimal.Decimal `json:"premium_pay"`
	Gross             decimal.Decimal `json:"gross"`
	EmployeeInsurance decimal.Decimal `json:"employee_insurance"`
	Net               decimal.Decimal `json:"net"`
	EmployerInsurance decimal.Decimal `json:"employer_insurance"`
	Industrial        decimal.Decimal `json:"industrial"`
	DevelopmentLevy   decimal.Decimal `json:"development_levy"`
	Severance         decimal.Decimal `json:"severance"`
	EmployerCost      decimal.Decimal `json:"employer_cost"`
}

// HireThreshold is the extra sales one more worker must bring in to pay for itself.
type HireThreshold struct {
	PerWorkerEmployerCost decimal.Decimal `json:"per_worker_employer_cost"`
	NeededMonthlySales    Amount          `json:"needed_monthly_sales"`
	NeededDailySales      Amount          `json:"needed_daily_sales"`
}

// LaborSimRow is one line of the workload simulation.
type LaborSimRow struct {
	Multiplier        decimal.Decimal `json:"multiplier"`
	MonthlyHours      decimal.Decimal `json:"monthly_hours"`
	WorkerGrossTotal  decimal.Decimal `json:"worker_gross_total"`
	WorkerNetTotal    decimal.Decimal `json:"worker_net_total"`
	EmployerTotalCost decimal.Decimal `json:"employer_total_cost"`
}

// LaborCostResult is the output of the labor cost calculator.
type LaborCostResult struct {
	Input                     LaborCostInput  `json:"input"`
	IndustrialRate            RateField       `json:"industrial_rate"`
	PerWorker                 WorkerCost      `json:"per_worker"`
	WorkerGrossTotal          decimal.Decimal `json:"worker_gross_total"`
	WorkerNetTotal            decimal.Decimal `json:"worker_net_total"`
	EmployerTotalCost         decimal.Decimal `json:"employer_total_cost"`
	EmployerImpliedHourlyCost decimal.Decimal `json:"employer_implied_hourly_cost"`
	WorkerItems               []LineItem      `json:"worker_items"`
	EmployerItems             []LineItem      `json:"employer_items"`
	BEPLink                   BEPInput        `json:"bep_link"`
	HireThreshold             HireThreshold   `json:"hire_threshold"`
	Simulation                []LaborSimRow   `json:"simulation"`
}
