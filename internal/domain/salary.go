package domain

import "github.com/shopspring/decimal"

// TaxPreset selects the flat withholding rate of the simple salary method.
type TaxPreset string

const (
	TaxPresetStandard TaxPreset = "standard"
	TaxPresetLight    TaxPreset = "light"
	TaxPresetHeavy    TaxPreset = "heavy"
)

// SalaryMethod selects how income tax is estimated.
type SalaryMethod string

const (
	// SalaryMethodProgressive annualizes pay and applies the progressive brackets
	// with earned-income deduction and earned-income tax credit.
	SalaryMethodProgressive SalaryMethod = "progressive"
	// SalaryMethodSimple applies a flat preset rate adjusted for dependents.
	SalaryMethodSimple SalaryMethod = "simple"
)

// SalaryNetInput describes a monthly salary.
type SalaryNetInput struct {
	GrossMonthlyPay  decimal.Decimal `yaml:"gross_monthly_pay" json:"gross_monthly_pay"`
	DependentCount   int             `yaml:"dependent_count" json:"dependent_count"`
	RatePreset       TaxPreset       `yaml:"rate_preset" json:"rate_preset"`
	IncludeIncomeTax bool            `yaml:"include_income_tax" json:"include_income_tax"`
	Method           SalaryMethod    `yaml:"method" json:"method"`
}

// IncomeTaxDetail shows the annual steps of the progressive method.
type IncomeTaxDetail struct {
	AnnualGross           decimal.Decimal `json:"annual_gross"`
	EarnedIncomeDeduction decimal.Decimal `json:"earned_income_deduction"`
	PersonalDeduction     decimal.Decimal `json:"personal_deduction"`
	InsuranceDeduction    decimal.Decimal `json:"insurance_deduction"`
	TaxBase               decimal.Decimal `json:"tax_base"`
	CalculatedTax         decimal.Decimal `json:"calculated_tax"`
	EarnedIncomeCredit    decimal.Decimal `json:"earned_income_credit"`
	DeterminedTax         decimal.Decimal `json:"determined_tax"`
}

// SalaryNetResult is the output of the net salary calculator.
type SalaryNetResult struct {
	Input                SalaryNetInput   `json:"input"`
	Method               SalaryMethod     `json:"method"`
	NetPay               decimal.Decimal  `json:"net_pay"`
	TotalDeductions      decimal.Decimal  `json:"total_deductions"`
	DeductionRatePercent decimal.Decimal  `json:"deduction_rate_percent"`
	Items                []LineItem       `json:"items"`
	IncomeTax            *IncomeTaxDetail `json:"income_tax,omitempty"`
}
