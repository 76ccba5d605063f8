package domain

import "github.com/shopspring/decimal"

// BEPInput describes a store's monthly cost structure for break-even analysis.
type BEPInput struct {
	FixedCost           decimal.Decimal `yaml:"fixed_cost" json:"fixed_cost"`
	VariableRatePercent decimal.Decimal `yaml:"variable_rate_percent" json:"variable_rate_percent"`
	OpenDaysPerMonth    int             `yaml:"open_days_per_month" json:"open_days_per_month"`
	HoursPerDay         decimal.Decimal `yaml:"hours_per_day" json:"hours_per_day"`
	TargetSales         decimal.Decimal `yaml:"target_sales" json:"target_sales"`
}

// BEPRow is one line of the break-even simulation table.
type BEPRow struct {
	Multiplier        decimal.Decimal `json:"multiplier"`
	Sales             decimal.Decimal `json:"sales"`
	Profit            decimal.Decimal `json:"profit"`
	ImpliedHourlyWage decimal.Decimal `json:"implied_hourly_wage"`
}

// BEPResult is the output of the break-even calculator.
type BEPResult struct {
	Input                  BEPInput        `json:"input"`
	VariableRate           decimal.Decimal `json:"variable_rate"`
	ContributionRatio      decimal.Decimal `json:"contribution_ratio"`
	BreakEvenSales         Amount          `json:"break_even_sales"`
	BreakEvenSalesPerDay   Amount          `json:"break_even_sales_per_day"`
	ProfitAtTarget         decimal.Decimal `json:"profit_at_target"`
	OwnerImpliedHourlyWage decimal.Decimal `json:"owner_implied_hourly_wage"`
	SimulationBase         decimal.Decimal `json:"simulation_base"`
	Table                  []BEPRow        `json:"table"`
}
