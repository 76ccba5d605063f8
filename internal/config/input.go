package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of calculation workbooks and rate tables
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a workbook from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a workbook. YAML is a superset of JSON, so both work.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// LoadRates loads a rate table. Missing fields keep their default values.
func (ip *InputParser) LoadRates(filename string) (domain.Rates, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.Rates{}, fmt.Errorf("failed to read rates file %s: %w", filename, err)
	}
	var rates domain.Rates
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return domain.Rates{}, fmt.Errorf("failed to parse rates YAML: %w", err)
	}
	if err := normalizeRates(&rates); err != nil {
		return domain.Rates{}, fmt.Errorf("rates validation failed: %w", err)
	}
	rates = rates.WithDefaults()
	if err := ip.ValidateRates(&rates); err != nil {
		return domain.Rates{}, fmt.Errorf("rates validation failed: %w", err)
	}
	return rates, nil
}

// ValidateConfiguration validates a loaded workbook
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, sc.Name)
		}
		seen[sc.Name] = true
		if err := ip.validateScenario(sc); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, sc.Name, err)
		}
	}

	if config.Rates != nil {
		if err := normalizeRates(config.Rates); err != nil {
			return fmt.Errorf("rates validation failed: %w", err)
		}
		rates := config.Rates.WithDefaults()
		if err := ip.ValidateRates(&rates); err != nil {
			return fmt.Errorf("rates validation failed: %w", err)
		}
	}
	return nil
}

// ValidateScenario checks the input block of a single scenario, as used by API
// requests that carry one calculator input.
func (ip *InputParser) ValidateScenario(sc *domain.Scenario) error {
	return ip.validateScenario(sc)
}

func (ip *InputParser) validateScenario(sc *domain.Scenario) error {
	switch sc.Type {
	case domain.ScenarioBEP, domain.ScenarioHourly, domain.ScenarioSalary,
		domain.ScenarioLaborCost, domain.ScenarioPriceDecision:
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown type %q", sc.Type)
	}
	if !sc.HasInputFor() {
		return fmt.Errorf("missing %q input block", sc.Type)
	}
	if err := normalizeFields(inputFields(sc)); err != nil {
		return err
	}

	switch sc.Type {
	case domain.ScenarioBEP:
		in := sc.BEP
		if err := nonNegative("fixed_cost", in.FixedCost); err != nil {
			return err
		}
		if err := nonNegative("target_sales", in.TargetSales); err != nil {
			return err
		}
		return percent("variable_rate_percent", in.VariableRatePercent)
	case domain.ScenarioHourly:
		in := sc.Hourly
		if err := nonNegative("hourly_wage", in.HourlyWage); err != nil {
			return err
		}
		if in.DaysPerWeek.GreaterThan(decimal.NewFromInt(7)) {
			return fmt.Errorf("days_per_week cannot exceed 7")
		}
		return nonNegative("hours_per_day", in.HoursPerDay)
	case domain.ScenarioSalary:
		in := sc.Salary
		if err := nonNegative("gross_monthly_pay", in.GrossMonthlyPay); err != nil {
			return err
		}
		switch in.RatePreset {
		case "", domain.TaxPresetStandard, domain.TaxPresetLight, domain.TaxPresetHeavy:
		default:
			return fmt.Errorf("unknown rate_preset %q", in.RatePreset)
		}
		switch in.Method {
		case "", domain.SalaryMethodProgressive, domain.SalaryMethodSimple:
		default:
			return fmt.Errorf("unknown method %q", in.Method)
		}
	case domain.ScenarioLaborCost:
		in := sc.LaborCost
		if err := nonNegative("hourly_wage", in.HourlyWage); err != nil {
			return err
		}
		if err := nonNegative("monthly_hours", in.MonthlyHours); err != nil {
			return err
		}
		if in.WorkerCount < 0 {
			return fmt.Errorf("worker_count cannot be negative")
		}
		if in.Industry != "" && domain.ParseIndustry(string(in.Industry)) != in.Industry {
			return fmt.Errorf("unknown industry %q", in.Industry)
		}
		if err := percent("industrial_rate", in.IndustrialRate.Value); err != nil {
			return err
		}
		return percent("variable_rate_percent", in.VariableRatePercent)
	case domain.ScenarioPriceDecision:
		in := sc.PriceDecision
		if err := nonNegative("current_price", in.CurrentPrice); err != nil {
			return err
		}
		if err := nonNegative("new_price", in.NewPrice); err != nil {
			return err
		}
		return nonNegative("variable_cost_per_unit", in.VariableCostPerUnit)
	}
	return nil
}

// ValidateRates checks that a rate table is usable
func (ip *InputParser) ValidateRates(rates *domain.Rates) error {
	if rates.WeeksPerMonth.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("weeks_per_month must be positive")
	}
	if rates.SeveranceMonths.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("severance_months must be positive")
	}
	ins := rates.SocialInsurance
	for name, r := range map[string]decimal.Decimal{"pension": ins.Pension, "health": ins.Health, "employment": ins.Employment} {
		if r.IsNegative() || r.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("social_insurance.%s must be a fraction between 0 and 1", name)
		}
	}
	if err := validateBrackets("income_tax.brackets", rates.IncomeTax.Brackets); err != nil {
		return err
	}
	if err := validateBrackets("income_tax.earned_income_deduction", rates.IncomeTax.EarnedIncomeDeduction); err != nil {
		return err
	}
	for ind, r := range rates.IndustryPresets {
		if err := percent("industry_presets."+string(ind), r); err != nil {
			return err
		}
	}
	return nil
}

// inputFields lists the decimal fields of the scenario's input block by name.
func inputFields(sc *domain.Scenario) map[string]*decimal.Decimal {
	switch sc.Type {
	case domain.ScenarioBEP:
		in := sc.BEP
		return map[string]*decimal.Decimal{
			"fixed_cost":            &in.FixedCost,
			"variable_rate_percent": &in.VariableRatePercent,
			"hours_per_day":         &in.HoursPerDay,
			"target_sales":          &in.TargetSales,
		}
	case domain.ScenarioHourly:
		in := sc.Hourly
		return map[string]*decimal.Decimal{
			"hourly_wage":             &in.HourlyWage,
			"hours_per_day":           &in.HoursPerDay,
			"days_per_week":           &in.DaysPerWeek,
			"break_minutes_per_day":   &in.BreakMinutesPerDay,
			"overtime_hours_per_week": &in.OvertimeHoursPerWeek,
		}
	case domain.ScenarioSalary:
		return map[string]*decimal.Decimal{"gross_monthly_pay": &sc.Salary.GrossMonthlyPay}
	case domain.ScenarioLaborCost:
		in := sc.LaborCost
		return map[string]*decimal.Decimal{
			"hourly_wage":                            &in.HourlyWage,
			"monthly_hours":                          &in.MonthlyHours,
			"monthly_overtime_hours":                 &in.MonthlyOvertimeHours,
			"industrial_rate":                        &in.IndustrialRate.Value,
			"employer_development_levy_rate_percent": &in.EmployerDevelopmentLevyRatePercent,
			"variable_rate_percent":                  &in.VariableRatePercent,
			"hours_per_day":                          &in.HoursPerDay,
			"target_sales":                           &in.TargetSales,
		}
	case domain.ScenarioPriceDecision:
		in := sc.PriceDecision
		return map[string]*decimal.Decimal{
			"current_price":           &in.CurrentPrice,
			"new_price":               &in.NewPrice,
			"variable_cost_per_unit":  &in.VariableCostPerUnit,
			"current_quantity":        &in.CurrentQuantity,
			"quantity_change_percent": &in.QuantityChangePercent,
			"fixed_cost":              &in.FixedCost,
		}
	}
	return nil
}

// normalizeFields rewrites each field through domain.CheckScale in place.
func normalizeFields(fields map[string]*decimal.Decimal) error {
	for name, p := range fields {
		v, err := domain.CheckScale(name, *p)
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// normalizeRates applies normalizeFields to every decimal of a rate table.
func normalizeRates(r *domain.Rates) error {
	it := &r.IncomeTax
	fields := map[string]*decimal.Decimal{
		"weeks_per_month":                          &r.WeeksPerMonth,
		"overtime_premium_rate":                    &r.OvertimePremiumRate,
		"minimum_hourly_wage":                      &r.MinimumHourlyWage,
		"severance_months":                         &r.SeveranceMonths,
		"social_insurance.pension":                 &r.SocialInsurance.Pension,
		"social_insurance.health":                  &r.SocialInsurance.Health,
		"social_insurance.employment":              &r.SocialInsurance.Employment,
		"income_tax.dependent_step":                &it.DependentStep,
		"income_tax.dependent_floor":               &it.DependentFloor,
		"income_tax.local_tax_rate":                &it.LocalTaxRate,
		"income_tax.earned_income_deduction_cap":   &it.EarnedIncomeDeductionCap,
		"income_tax.personal_deduction_per_person": &it.PersonalDeductionPerPerson,
	}
	if r.HolidayMinWeeklyHours != nil {
		fields["holiday_min_weekly_hours"] = r.HolidayMinWeeklyHours
	}
	for name, brackets := range map[string][]domain.Bracket{
		"income_tax.earned_income_deduction": it.EarnedIncomeDeduction,
		"income_tax.brackets":                it.Brackets,
		"income_tax.earned_income_credit":    it.EarnedIncomeCredit,
	} {
		for i := range brackets {
			fields[fmt.Sprintf("%s[%d].up_to", name, i)] = &brackets[i].UpTo
			fields[fmt.Sprintf("%s[%d].rate", name, i)] = &brackets[i].Rate
		}
	}
	for i := range it.CreditLimits {
		c := &it.CreditLimits[i]
		for key, p := range map[string]*decimal.Decimal{"up_to": &c.UpTo, "from": &c.From, "base": &c.Base, "slope": &c.Slope, "floor": &c.Floor} {
			fields[fmt.Sprintf("income_tax.credit_limits[%d].%s", i, key)] = p
		}
	}
	for name, multipliers := range map[string][]decimal.Decimal{"bep_multipliers": r.BEPMultipliers, "workload_multipliers": r.WorkloadMultipliers} {
		for i := range multipliers {
			fields[fmt.Sprintf("%s[%d]", name, i)] = &multipliers[i]
		}
	}
	if err := normalizeFields(fields); err != nil {
		return err
	}
	if err := normalizeMap("income_tax.presets.", it.Presets); err != nil {
		return err
	}
	return normalizeMap("industry_presets.", r.IndustryPresets)
}

func normalizeMap[K ~string](prefix string, m map[K]decimal.Decimal) error {
	for k, v := range m {
		n, err := domain.CheckScale(prefix+string(k), v)
		if err != nil {
			return err
		}
		m[k] = n
	}
	return nil
}

// validateBrackets requires ascending limits with only the last bracket open.
func validateBrackets(name string, brackets []domain.Bracket) error {
	prev := decimal.Zero
	for i, b := range brackets {
		if b.UpTo.IsZero() {
			if i != len(brackets)-1 {
				return fmt.Errorf("%s: only the last bracket may be open-ended", name)
			}
			continue
		}
		if b.UpTo.LessThanOrEqual(prev) {
			return fmt.Errorf("%s: bracket %d limit must be above %s", name, i, prev)
		}
		prev = b.UpTo
	}
	return nil
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%s cannot be negative", field)
	}
	return nil
}

func percent(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100", field)
	}
	return nil
}
