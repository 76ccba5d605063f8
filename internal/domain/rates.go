package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Rates contains the approximate statutory rates and conventions shared by every
// calculator. Defaults come from DefaultRates and can be overridden by rates.yaml.
type Rates struct {
	Metadata RatesMetadata `yaml:"metadata" json:"metadata"`

	// WeeksPerMonth is the average number of weeks in a month (365/12/7).
	WeeksPerMonth decimal.Decimal `yaml:"weeks_per_month" json:"weeks_per_month"`
	// HolidayMinWeeklyHours is the weekly paid-hour threshold for the holiday
	// allowance. An explicit zero means any positive weekly hours qualify.
	HolidayMinWeeklyHours *decimal.Decimal `yaml:"holiday_min_weekly_hours" json:"holiday_min_weekly_hours"`
	OvertimePremiumRate   decimal.Decimal  `yaml:"overtime_premium_rate" json:"overtime_premium_rate"`
	MinimumHourlyWage     decimal.Decimal  `yaml:"minimum_hourly_wage" json:"minimum_hourly_wage"`
	SeveranceMonths       decimal.Decimal  `yaml:"severance_months" json:"severance_months"`

	SocialInsurance SocialInsuranceRates `yaml:"social_insurance" json:"social_insurance"`
	IncomeTax       IncomeTaxRules       `yaml:"income_tax" json:"income_tax"`

	// IndustryPresets maps an industry to its industrial accident insurance rate in percent.
	IndustryPresets map[Industry]decimal.Decimal `yaml:"industry_presets" json:"industry_presets"`

	BEPMultipliers      []decimal.Decimal `yaml:"bep_multipliers" json:"bep_multipliers"`
	WorkloadMultipliers []decimal.Decimal `yaml:"workload_multipliers" json:"workload_multipliers"`

	// seeded marks a table decoded on top of DefaultRates.
	seeded bool
}

// UnmarshalYAML decodes a rate table on top of DefaultRates. Fields the document
// omits keep their defaults, and an explicit zero such as
// overtime_premium_rate: 0 stays zero.
func (r *Rates) UnmarshalYAML(value *yaml.Node) error {
	type plain Rates
	decoded := plain(DefaultRates())
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*r = Rates(decoded)
	r.seeded = true
	return nil
}

// RatesMetadata describes the rate table.
type RatesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	Description string `yaml:"description" json:"description"`
}

// SocialInsuranceRates are employee-side shares; the employer pays the same approximate rates.
type SocialInsuranceRates struct {
	Pension    decimal.Decimal `yaml:"pension" json:"pension"`
	Health     decimal.Decimal `yaml:"health" json:"health"`
	Employment decimal.Decimal `yaml:"employment" json:"employment"`
}

// Total returns the combined rate.
func (s SocialInsuranceRates) Total() decimal.Decimal {
	return s.Pension.Add(s.Health).Add(s.Employment)
}

// Bracket is one segment of a progressive schedule. A zero UpTo marks the open top bracket.
type Bracket struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// IncomeTaxRules drives both salary methods.
type IncomeTaxRules struct {
	// Simple method
	Presets        map[TaxPreset]decimal.Decimal `yaml:"presets" json:"presets"`
	DependentStep  decimal.Decimal               `yaml:"dependent_step" json:"dependent_step"`
	DependentFloor decimal.Decimal               `yaml:"dependent_floor" json:"dependent_floor"`
	LocalTaxRate   decimal.Decimal               `yaml:"local_tax_rate" json:"local_tax_rate"`

	// Progressive method (annual figures)
	EarnedIncomeDeduction      []Bracket       `yaml:"earned_income_deduction" json:"earned_income_deduction"`
	EarnedIncomeDeductionCap   decimal.Decimal `yaml:"earned_income_deduction_cap" json:"earned_income_deduction_cap"`
	PersonalDeductionPerPerson decimal.Decimal `yaml:"personal_deduction_per_person" json:"personal_deduction_per_person"`
	Brackets                   []Bracket       `yaml:"brackets" json:"brackets"`
	EarnedIncomeCredit         []Bracket       `yaml:"earned_income_credit" json:"earned_income_credit"`
	CreditLimits               []CreditLimit   `yaml:"credit_limits" json:"credit_limits"`
}

// CreditLimit caps the earned-income tax credit for annual gross pay up to UpTo.
// The cap is max(Floor, Base - (gross-From)*Slope).
type CreditLimit struct {
	UpTo  decimal.Decimal `yaml:"up_to" json:"up_to"`
	From  decimal.Decimal `yaml:"from" json:"from"`
	Base  decimal.Decimal `yaml:"base" json:"base"`
	Slope decimal.Decimal `yaml:"slope" json:"slope"`
	Floor decimal.Decimal `yaml:"floor" json:"floor"`
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ds(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, d(v))
	}
	return out
}

// DefaultRates returns the built-in approximate rates.
func DefaultRates() Rates {
	holidayMin := d("15")
	return Rates{
		Metadata: RatesMetadata{
			DataYear:    2025,
			Description: "approximate Korean payroll rates; not a compliance reference",
		},
		WeeksPerMonth:         d("4.345"),
		HolidayMinWeeklyHours: &holidayMin,
		OvertimePremiumRate:   d("0.5"),
		MinimumHourlyWage:     d("10030"),
		SeveranceMonths:       d("12"),
		SocialInsurance: SocialInsuranceRates{
			Pension:    d("0.0475"),
			Health:     d("0.03595"),
			Employment: d("0.009"),
		},
		IncomeTax: IncomeTaxRules{
			Presets: map[TaxPreset]decimal.Decimal{
				TaxPresetStandard: d("0.02"),
				TaxPresetLight:    d("0.012"),
				TaxPresetHeavy:    d("0.035"),
			},
			DependentStep:  d("0.05"),
			DependentFloor: d("0.75"),
			LocalTaxRate:   d("0.10"),
			EarnedIncomeDeduction: []Bracket{
				{UpTo: d("5000000"), Rate: d("0.70")},
				{UpTo: d("15000000"), Rate: d("0.40")},
				{UpTo: d("45000000"), Rate: d("0.15")},
				{UpTo: d("100000000"), Rate: d("0.05")},
				{Rate: d("0.02")},
			},
			EarnedIncomeDeductionCap:   d("20000000"),
			PersonalDeductionPerPerson: d("1500000"),
			Brackets: []Bracket{
				{UpTo: d("14000000"), Rate: d("0.06")},
				{UpTo: d("50000000"), Rate: d("0.15")},
				{UpTo: d("88000000"), Rate: d("0.24")},
				{UpTo: d("150000000"), Rate: d("0.35")},
				{UpTo: d("300000000"), Rate: d("0.38")},
				{UpTo: d("500000000"), Rate: d("0.40")},
				{UpTo: d("1000000000"), Rate: d("0.42")},
				{Rate: d("0.45")},
			},
			EarnedIncomeCredit: []Bracket{
				{UpTo: d("1300000"), Rate: d("0.55")},
				{Rate: d("0.30")},
			},
			CreditLimits: []CreditLimit{
				{UpTo: d("33000000"), Base: d("740000"), Floor: d("740000")},
				{UpTo: d("70000000"), From: d("33000000"), Base: d("740000"), Slope: d("0.008"), Floor: d("660000")},
				{UpTo: d("120000000"), From: d("70000000"), Base: d("660000"), Slope: d("0.5"), Floor: d("500000")},
				{From: d("120000000"), Base: d("500000"), Slope: d("0.5"), Floor: d("200000")},
			},
		},
		IndustryPresets: map[Industry]decimal.Decimal{
			IndustryCafe:       d("1.0"),
			IndustryRestaurant: d("1.2"),
			IndustryOffice:     d("0.7"),
			IndustryDelivery:   d("2.0"),
		},
		BEPMultipliers:      ds("0.6", "0.8", "1.0", "1.2", "1.6"),
		WorkloadMultipliers: ds("0.8", "1.0", "1.2", "1.5"),
	}
}

// HolidayThreshold returns the weekly-hours threshold for the holiday allowance.
func (r Rates) HolidayThreshold() decimal.Decimal {
	if r.HolidayMinWeeklyHours == nil {
		return decimal.Zero
	}
	return *r.HolidayMinWeeklyHours
}

// WithDefaults fills zero-valued fields of a table built in code from DefaultRates.
// A decoded table already carries its defaults and is returned unchanged.
func (r Rates) WithDefaults() Rates {
	if r.seeded {
		return r
	}
	def := DefaultRates()
	if r.Metadata.DataYear == 0 {
		r.Metadata = def.Metadata
	}
	if r.WeeksPerMonth.IsZero() {
		r.WeeksPerMonth = def.WeeksPerMonth
	}
	if r.HolidayMinWeeklyHours == nil {
		r.HolidayMinWeeklyHours = def.HolidayMinWeeklyHours
	}
	if r.OvertimePremiumRate.IsZero() {
		r.OvertimePremiumRate = def.OvertimePremiumRate
	}
	if r.MinimumHourlyWage.IsZero() {
		r.MinimumHourlyWage = def.MinimumHourlyWage
	}
	if r.SeveranceMonths.IsZero() {
		r.SeveranceMonths = def.SeveranceMonths
	}
	if r.SocialInsurance.Total().IsZero() {
		r.SocialInsurance = def.SocialInsurance
	}
	it := &r.IncomeTax
	it.Presets = mergeDefaults(it.Presets, def.IncomeTax.Presets)
	if it.DependentStep.IsZero() {
		it.DependentStep = def.IncomeTax.DependentStep
	}
	if it.DependentFloor.IsZero() {
		it.DependentFloor = def.IncomeTax.DependentFloor
	}
	if it.LocalTaxRate.IsZero() {
		it.LocalTaxRate = def.IncomeTax.LocalTaxRate
	}
	if len(it.EarnedIncomeDeduction) == 0 {
		it.EarnedIncomeDeduction = def.IncomeTax.EarnedIncomeDeduction
	}
	if it.EarnedIncomeDeductionCap.IsZero() {
		it.EarnedIncomeDeductionCap = def.IncomeTax.EarnedIncomeDeductionCap
	}
	if it.PersonalDeductionPerPerson.IsZero() {
		it.PersonalDeductionPerPerson = def.IncomeTax.PersonalDeductionPerPerson
	}
	if len(it.Brackets) == 0 {
		it.Brackets = def.IncomeTax.Brackets
	}
	if len(it.EarnedIncomeCredit) == 0 {
		it.EarnedIncomeCredit = def.IncomeTax.EarnedIncomeCredit
	}
	if len(it.CreditLimits) == 0 {
		it.CreditLimits = def.IncomeTax.CreditLimits
	}
	r.IndustryPresets = mergeDefaults(r.IndustryPresets, def.IndustryPresets)
	if len(r.BEPMultipliers) == 0 {
		r.BEPMultipliers = def.BEPMultipliers
	}
	if len(r.WorkloadMultipliers) == 0 {
		r.WorkloadMultipliers = def.WorkloadMultipliers
	}
	return r
}

// mergeDefaults returns a copy of m with the keys of def it lacks.
func mergeDefaults[K comparable](m, def map[K]decimal.Decimal) map[K]decimal.Decimal {
	out := make(map[K]decimal.Decimal, len(def))
	for k, v := range def {
		out[k] = v
	}
	for k, v := range m {
		out[k] = v
	}
	return out
}
