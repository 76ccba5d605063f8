package transform

import (
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AdjustWorkers adds or removes workers. The head count never drops below one.
type AdjustWorkers struct {
	Delta int
}

func (t *AdjustWorkers) Name() string { return "adjust_workers" }

func (t *AdjustWorkers) Description() string {
	if t.Delta >= 0 {
		return fmt.Sprintf("근로자 %d명 추가", t.Delta)
	}
	return fmt.Sprintf("근로자 %d명 감축", -t.Delta)
}

func (t *AdjustWorkers) Validate(base domain.LaborCostInput) error {
	if t.Delta == 0 {
		return NewTransformError(t.Name(), "validate", "delta cannot be zero", nil)
	}
	if base.WorkerCount+t.Delta < 1 {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("cannot remove %d worker(s) from %d", -t.Delta, base.WorkerCount), nil)
	}
	return nil
}

func (t *AdjustWorkers) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.WorkerCount += t.Delta
	return base, nil
}

// ScaleWage raises or lowers the hourly wage by a percentage.
type ScaleWage struct {
	Percent decimal.Decimal
}

func (t *ScaleWage) Name() string { return "scale_wage" }

func (t *ScaleWage) Description() string {
	return fmt.Sprintf("시급 %s%% 변경", t.Percent.String())
}

func (t *ScaleWage) Validate(base domain.LaborCostInput) error {
	if t.Percent.LessThanOrEqual(hundred.Neg()) {
		return NewTransformError(t.Name(), "validate", "percent must be greater than -100", nil)
	}
	return nil
}

func (t *ScaleWage) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	factor := decimal.NewFromInt(1).Add(t.Percent.Div(hundred))
	base.HourlyWage = base.HourlyWage.Mul(factor).Round(0)
	return base, nil
}

// SetHourlyWage replaces the hourly wage.
type SetHourlyWage struct {
	Wage decimal.Decimal
}

func (t *SetHourlyWage) Name() string { return "set_hourly_wage" }

func (t *SetHourlyWage) Description() string {
	return fmt.Sprintf("시급 %s원으로 변경", t.Wage.StringFixed(0))
}

func (t *SetHourlyWage) Validate(base domain.LaborCostInput) error {
	if !t.Wage.IsPositive() {
		return NewTransformError(t.Name(), "validate", "wage must be positive", nil)
	}
	return nil
}

func (t *SetHourlyWage) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.HourlyWage = t.Wage
	return base, nil
}

// AddOvertime adds monthly overtime hours per worker.
type AddOvertime struct {
	Hours decimal.Decimal
}

func (t *AddOvertime) Name() string { return "add_overtime" }

func (t *AddOvertime) Description() string {
	return fmt.Sprintf("월 연장근로 %s시간 추가", t.Hours.String())
}

func (t *AddOvertime) Validate(base domain.LaborCostInput) error {
	if base.MonthlyOvertimeHours.Add(t.Hours).IsNegative() {
		return NewTransformError(t.Name(), "validate", "overtime hours cannot become negative", nil)
	}
	return nil
}

func (t *AddOvertime) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.MonthlyOvertimeHours = base.MonthlyOvertimeHours.Add(t.Hours)
	return base, nil
}

// SetSeverance turns the severance accrual on or off.
type SetSeverance struct {
	Include bool
}

func (t *SetSeverance) Name() string { return "set_severance" }

func (t *SetSeverance) Description() string {
	return onOff("퇴직금 적립", t.Include)
}

func (t *SetSeverance) Validate(domain.LaborCostInput) error { return nil }

func (t *SetSeverance) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.IncludeSeverance = t.Include
	return base, nil
}

// SetSocialInsurance turns the four social insurances on or off.
type SetSocialInsurance struct {
	Include bool
}

func (t *SetSocialInsurance) Name() string { return "set_social_insurance" }

func (t *SetSocialInsurance) Description() string {
	return onOff("4대보험", t.Include)
}

func (t *SetSocialInsurance) Validate(domain.LaborCostInput) error { return nil }

func (t *SetSocialInsurance) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.IncludeSocialInsurance = t.Include
	return base, nil
}

// SetHolidayAllowance turns the weekly holiday allowance on or off.
type SetHolidayAllowance struct {
	Include bool
}

func (t *SetHolidayAllowance) Name() string { return "set_holiday_allowance" }

func (t *SetHolidayAllowance) Description() string {
	return onOff("주휴수당", t.Include)
}

func (t *SetHolidayAllowance) Validate(domain.LaborCostInput) error { return nil }

func (t *SetHolidayAllowance) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.IncludeHolidayAllowance = t.Include
	return base, nil
}

// SwitchIndustry selects another industry preset. A hand-edited industrial rate
// is kept, matching how the calculator treats preset changes.
type SwitchIndustry struct {
	Industry domain.Industry
}

func (t *SwitchIndustry) Name() string { return "switch_industry" }

func (t *SwitchIndustry) Description() string {
	return fmt.Sprintf("업종 %s로 변경", t.Industry.Label())
}

func (t *SwitchIndustry) Validate(domain.LaborCostInput) error {
	if domain.ParseIndustry(string(t.Industry)) != t.Industry {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown industry %q", t.Industry), nil)
	}
	return nil
}

func (t *SwitchIndustry) Apply(base domain.LaborCostInput) (domain.LaborCostInput, error) {
	base.Industry = t.Industry
	return base, nil
}

func onOff(label string, on bool) string {
	if on {
		return label + " 포함"
	}
	return label + " 제외"
}
