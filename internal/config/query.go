package config

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultBEPInput is used for break-even parameters missing from a query string.
func DefaultBEPInput() domain.BEPInput {
	return domain.BEPInput{
		FixedCost:           decimal.NewFromInt(5_200_000),
		VariableRatePercent: decimal.NewFromInt(38),
		OpenDaysPerMonth:    26,
		HoursPerDay:         decimal.NewFromInt(10),
		TargetSales:         decimal.NewFromInt(12_000_000),
	}
}

// DefaultLaborCostInput is used for labor cost parameters missing from a query string.
func DefaultLaborCostInput() domain.LaborCostInput {
	return domain.LaborCostInput{
		HourlyWage:              decimal.NewFromInt(10_030),
		MonthlyHours:            decimal.NewFromInt(209),
		WeeklyWorkDays:          5,
		WorkerCount:             1,
		IncludeHolidayAllowance: true,
		IncludeSocialInsurance:  true,
		IncludeSeverance:        true,
		Industry:                domain.IndustryCafe,
		VariableRatePercent:     decimal.NewFromInt(35),
		OpenDays:                26,
		HoursPerDay:             decimal.NewFromInt(10),
		TargetSales:             decimal.NewFromInt(30_000_000),
	}
}

// BEPFromQuery seeds a break-even input from fixedCost, variableRate, openDays,
// hoursPerDay and targetSales. Missing or malformed values keep their defaults.
func BEPFromQuery(q url.Values) domain.BEPInput {
	in := DefaultBEPInput()
	in.FixedCost = queryDecimal(q, "fixedCost", in.FixedCost)
	in.VariableRatePercent = queryDecimal(q, "variableRate", in.VariableRatePercent)
	in.OpenDaysPerMonth = queryInt(q, "openDays", in.OpenDaysPerMonth)
	in.HoursPerDay = queryDecimal(q, "hoursPerDay", in.HoursPerDay)
	in.TargetSales = queryDecimal(q, "targetSales", in.TargetSales)
	return in
}

// LaborCostFromQuery seeds a labor cost input. Recognized parameters:
//
//	hourly, hours, days, count, extra (monthly overtime hours), industry,
//	industrialRate, levyRate, insurance, holiday, severance,
//	variableRate, openDays, hoursPerDay, targetSales
//
// An explicit industrialRate counts as a user edit, so the industry preset does
// not replace it.
func LaborCostFromQuery(q url.Values) domain.LaborCostInput {
	in := DefaultLaborCostInput()
	in.HourlyWage = queryDecimal(q, "hourly", in.HourlyWage)
	in.MonthlyHours = queryDecimal(q, "hours", in.MonthlyHours)
	in.WeeklyWorkDays = queryInt(q, "days", in.WeeklyWorkDays)
	in.WorkerCount = queryInt(q, "count", in.WorkerCount)
	in.MonthlyOvertimeHours = queryDecimal(q, "extra", in.MonthlyOvertimeHours)
	if s := q.Get("industry"); s != "" {
		in.Industry = domain.ParseIndustry(s)
	}
	if v, ok := parseDecimal(q.Get("industrialRate")); ok {
		in.IndustrialRate = in.IndustrialRate.Edit(v)
	}
	in.EmployerDevelopmentLevyRatePercent = queryDecimal(q, "levyRate", in.EmployerDevelopmentLevyRatePercent)
	in.IncludeSocialInsurance = queryBool(q, "insurance", in.IncludeSocialInsurance)
	in.IncludeHolidayAllowance = queryBool(q, "holiday", in.IncludeHolidayAllowance)
	in.IncludeSeverance = queryBool(q, "severance", in.IncludeSeverance)
	in.VariableRatePercent = queryDecimal(q, "variableRate", in.VariableRatePercent)
	in.OpenDays = queryInt(q, "openDays", in.OpenDays)
	in.HoursPerDay = queryDecimal(q, "hoursPerDay", in.HoursPerDay)
	in.TargetSales = queryDecimal(q, "targetSales", in.TargetSales)
	return in
}

func queryDecimal(q url.Values, key string, def decimal.Decimal) decimal.Decimal {
	if v, ok := parseDecimal(q.Get(key)); ok {
		return v
	}
	return def
}

// parseDecimal accepts thousands separators. A value whose exponent cannot be
// brought within domain.MaxScale counts as malformed.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return domain.NormalizeScale(v)
}

func queryInt(q url.Values, key string, def int) int {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func queryBool(q url.Values, key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(q.Get(key))) {
	case "1", "true", "on", "yes", "y":
		return true
	case "0", "false", "off", "no", "n":
		return false
	}
	return def
}
