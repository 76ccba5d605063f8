package calculation

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeBEP calculates the break-even sales of a store and a simulation table of
// profit around it.
func (e *Engine) ComputeBEP(in domain.BEPInput) domain.BEPResult {
	in = sanitizeBEP(in)

	variableRate := in.VariableRatePercent.Div(hundred)
	contribution := one.Sub(variableRate)
	openDays := decimal.NewFromInt(int64(in.OpenDaysPerMonth))

	breakEven := domain.Undefined()
	if contribution.GreaterThan(decimal.Zero) {
		breakEven = domain.NewAmount(in.FixedCost.Div(contribution))
	} else {
		e.Logger.Debugf("bep: variable rate %s%% leaves no contribution margin", in.VariableRatePercent)
	}

	res := domain.BEPResult{
		Input:                in,
		VariableRate:         variableRate,
		ContributionRatio:    contribution,
		BreakEvenSales:       breakEven,
		BreakEvenSalesPerDay: breakEven.Div(openDays),
	}
	res.ProfitAtTarget = bepProfit(in.TargetSales, variableRate, in.FixedCost)
	res.OwnerImpliedHourlyWage = ownerHourlyWage(res.ProfitAtTarget, openDays, in.HoursPerDay)

	switch {
	case breakEven.IsDefined():
		res.SimulationBase = breakEven.Value
	case in.TargetSales.GreaterThan(decimal.Zero):
		res.SimulationBase = in.TargetSales
	default:
		res.SimulationBase = in.FixedCost.Mul(two)
	}

	res.Table = make([]domain.BEPRow, 0, len(e.Rates.BEPMultipliers))
	for _, m := range e.Rates.BEPMultipliers {
		sales := maxZero(res.SimulationBase.Mul(m))
		profit := bepProfit(sales, variableRate, in.FixedCost)
		res.Table = append(res.Table, domain.BEPRow{
			Multiplier:        m,
			Sales:             sales,
			Profit:            profit,
			ImpliedHourlyWage: ownerHourlyWage(profit, openDays, in.HoursPerDay),
		})
	}
	return res
}

func bepProfit(sales, variableRate, fixedCost decimal.Decimal) decimal.Decimal {
	return sales.Sub(sales.Mul(variableRate)).Sub(fixedCost)
}

func ownerHourlyWage(profit, openDays, hoursPerDay decimal.Decimal) decimal.Decimal {
	hours := openDays.Mul(hoursPerDay)
	if hours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return profit.Div(hours)
}
