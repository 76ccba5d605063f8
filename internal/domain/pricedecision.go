package domain

import "github.com/shopspring/decimal"

// PriceDecisionInput describes a proposed price change.
type PriceDecisionInput struct {
	CurrentPrice          decimal.Decimal `yaml:"current_price" json:"current_price"`
	NewPrice              decimal.Decimal `yaml:"new_price" json:"new_price"`
	VariableCostPerUnit   decimal.Decimal `yaml:"variable_cost_per_unit" json:"variable_cost_per_unit"`
	CurrentQuantity       decimal.Decimal `yaml:"current_quantity" json:"current_quantity"`
	QuantityChangePercent decimal.Decimal `yaml:"quantity_change_percent" json:"quantity_change_percent"`
	FixedCost             decimal.Decimal `yaml:"fixed_cost" json:"fixed_cost"`
}

// PriceDirection is the sign of the price change.
type PriceDirection string

const (
	PriceIncrease  PriceDirection = "increase"
	PriceDecrease  PriceDirection = "decrease"
	PriceUnchanged PriceDirection = "unchanged"
)

// Verdict is the sign of the profit change.
type Verdict string

const (
	VerdictImproves Verdict = "improves"
	VerdictWorsens  Verdict = "worsens"
	VerdictNeutral  Verdict = "neutral"
)

// Recommendation summarizes a price decision for display.
type Recommendation struct {
	Direction   PriceDirection `json:"direction"`
	Verdict     Verdict        `json:"verdict"`
	Message     string         `json:"message"`
	LossWarning string         `json:"loss_warning,omitempty"`
}

// PriceDecisionResult is the output of the price decision calculator.
type PriceDecisionResult struct {
	Input                          PriceDecisionInput `json:"input"`
	ProjectedQuantity              decimal.Decimal    `json:"projected_quantity"`
	CurrentUnitMargin              decimal.Decimal    `json:"current_unit_margin"`
	NewUnitMargin                  decimal.Decimal    `json:"new_unit_margin"`
	CurrentTotalMargin             decimal.Decimal    `json:"current_total_margin"`
	NewTotalMargin                 decimal.Decimal    `json:"new_total_margin"`
	CurrentOperatingProfit         decimal.Decimal    `json:"current_operating_profit"`
	NewOperatingProfit             decimal.Decimal    `json:"new_operating_profit"`
	ProfitDelta                    decimal.Decimal    `json:"profit_delta"`
	NewBreakEvenQuantity           Amount             `json:"new_break_even_quantity"`
	BreakEvenQuantityChangePercent Amount             `json:"break_even_quantity_change_percent"`
	Recommendation                 Recommendation     `json:"recommendation"`
}
