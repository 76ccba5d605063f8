package domain

import "github.com/shopspring/decimal"

// LineItem is a labelled amount in an itemized breakdown. Code is a stable
// ASCII identifier; Label is the display text.
type LineItem struct {
	Code   string          `json:"code"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Line item codes shared by the calculators and formatters.
const (
	ItemPension         = "pension"
	ItemHealth          = "health"
	ItemEmployment      = "employment"
	ItemIncomeTax       = "income_tax"
	ItemLocalTax        = "local_tax"
	ItemBasePay         = "base_pay"
	ItemHolidayPay      = "holiday_pay"
	ItemOvertimePremium = "overtime_premium"
	ItemIndustrial      = "industrial_insurance"
	ItemDevelopmentLevy = "development_levy"
	ItemSeverance       = "severance"
)

var itemLabels = map[string]string{
	ItemPension:         "국민연금",
	ItemHealth:          "건강보험",
	ItemEmployment:      "고용보험",
	ItemIncomeTax:       "소득세",
	ItemLocalTax:        "지방소득세",
	ItemBasePay:         "기본급",
	ItemHolidayPay:      "주휴수당",
	ItemOvertimePremium: "연장근로 가산수당",
	ItemIndustrial:      "산재보험",
	ItemDevelopmentLevy: "고용안정·직업능력개발",
	ItemSeverance:       "퇴직금 적립",
}

// NewLineItem builds a line item with the standard label for code.
func NewLineItem(code string, amount decimal.Decimal) LineItem {
	label, ok := itemLabels[code]
	if !ok {
		label = code
	}
	return LineItem{Code: code, Label: label, Amount: amount}
}

// SumItems adds the amounts of items.
func SumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount)
	}
	return total
}
