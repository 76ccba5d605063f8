package calculation

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// laborRates are the percentages resolved once per labor cost run.
type laborRates struct {
	insurance  decimal.Decimal
	industrial decimal.Decimal
	levy       decimal.Decimal
}

// ComputeLaborCost calculates what a store's staff costs the employer per month,
// what the workers take home, the sales needed to pay for one more hire and a
// simulation of the cost at different workloads.
func (e *Engine) ComputeLaborCost(in domain.LaborCostInput) domain.LaborCostResult {
	in = sanitizeLaborCost(in)
	field := domain.ResolveIndustrialRate(in.IndustrialRate, in.Industry, e.Rates.IndustryPresets)
	field.Value = between(field.Value, 0, 99)
	in.IndustrialRate = field

	lr := laborRates{
		industrial: field.Value.Div(hundred),
		levy:       in.EmployerDevelopmentLevyRatePercent.Div(hundred),
	}
	if in.IncludeSocialInsurance {
		lr.insurance = e.Rates.SocialInsurance.Total()
	}

	workers := decimal.NewFromInt(int64(in.WorkerCount))
	premium := in.MonthlyOvertimeHours.Mul(in.HourlyWage).Mul(e.Rates.OvertimePremiumRate)
	w := e.workerCost(in, in.MonthlyHours, premium, lr)

	res := domain.LaborCostResult{
		Input:            in,
		IndustrialRate:   field,
		PerWorker:        w,
		WorkerGrossTotal: w.Gross.Mul(workers),
		WorkerNetTotal:   w.Net.Mul(workers),
	}
	res.EmployerTotalCost = employerTotal(w, workers)

	paidHours := in.MonthlyHours.Mul(workers)
	if paidHours.GreaterThan(decimal.Zero) {
		res.EmployerImpliedHourlyCost = res.EmployerTotalCost.Div(paidHours)
	}

	res.WorkerItems = e.workerItems(in, w, workers)
	res.EmployerItems = e.employerItems(in, w, workers)

	res.BEPLink = domain.BEPInput{
		FixedCost:           res.EmployerTotalCost.Round(0),
		VariableRatePercent: in.VariableRatePercent,
		OpenDaysPerMonth:    in.OpenDays,
		HoursPerDay:         in.HoursPerDay,
		TargetSales:         in.TargetSales,
	}

	margin := one.Sub(in.VariableRatePercent.Div(hundred))
	needed := domain.NewAmount(w.EmployerCost).Div(margin)
	if !needed.IsDefined() {
		e.Logger.Debugf("labor cost: variable rate %s%% leaves no margin to fund a hire", in.VariableRatePercent)
	}
	res.HireThreshold = domain.HireThreshold{
		PerWorkerEmployerCost: w.EmployerCost,
		NeededMonthlySales:    needed,
		NeededDailySales:      needed.Div(decimal.NewFromInt(int64(in.OpenDays))),
	}

	res.Simulation = make([]domain.LaborSimRow, 0, len(e.Rates.WorkloadMultipliers))
	for _, m := range e.Rates.WorkloadMultipliers {
		hours := in.MonthlyHours.Mul(m)
		sw := e.workerCost(in, hours, premium, lr)
		res.Simulation = append(res.Simulation, domain.LaborSimRow{
			Multiplier:        m,
			MonthlyHours:      hours,
			WorkerGrossTotal:  sw.Gross.Mul(workers),
			WorkerNetTotal:    sw.Net.Mul(workers),
			EmployerTotalCost: employerTotal(sw, workers),
		})
	}
	return res
}

// workerCost computes one worker's monthly figures. The overtime premium is passed
// in so that workload simulation rows keep it constant.
func (e *Engine) workerCost(in domain.LaborCostInput, monthlyHours, premium decimal.Decimal, lr laborRates) domain.WorkerCost {
	r := e.Rates
	w := domain.WorkerCost{
		BasePay:     in.HourlyWage.Mul(monthlyHours),
		WeeklyHours: monthlyHours.Div(r.WeeksPerMonth),
		PremiumPay:  premium,
	}
	if holidayEligible(in.IncludeHolidayAllowance, w.WeeklyHours, r.HolidayThreshold()) {
		days := decimal.NewFromInt(int64(in.WeeklyWorkDays))
		w.HolidayPay = w.WeeklyHours.Div(days).Mul(in.HourlyWage).Mul(r.WeeksPerMonth)
	}
	w.Gross = w.BasePay.Add(w.HolidayPay).Add(w.PremiumPay)

	w.EmployeeInsurance = w.Gross.Mul(lr.insurance)
	w.EmployerInsurance = w.Gross.Mul(lr.insurance)
	w.Net = w.Gross.Sub(w.EmployeeInsurance)
	w.Industrial = w.Gross.Mul(lr.industrial)
	w.DevelopmentLevy = w.Gross.Mul(lr.levy)
	if in.IncludeSeverance {
		w.Severance = w.Gross.Div(r.SeveranceMonths)
	}
	w.EmployerCost = w.Gross.Add(w.EmployerInsurance).Add(w.Industrial).Add(w.DevelopmentLevy).Add(w.Severance)
	return w
}

func employerTotal(w domain.WorkerCost, workers decimal.Decimal) decimal.Decimal {
	extra := w.EmployerInsurance.Add(w.Industrial).Add(w.DevelopmentLevy).Add(w.Severance)
	return w.Gross.Mul(workers).Add(extra.Mul(workers))
}

// workerItems lists pay components and employee deductions for all workers.
func (e *Engine) workerItems(in domain.LaborCostInput, w domain.WorkerCost, workers decimal.Decimal) []domain.LineItem {
	items := []domain.LineItem{domain.NewLineItem(domain.ItemBasePay, w.BasePay.Mul(workers))}
	if in.IncludeHolidayAllowance {
		items = append(items, domain.NewLineItem(domain.ItemHolidayPay, w.HolidayPay.Mul(workers)))
	}
	if w.PremiumPay.GreaterThan(decimal.Zero) {
		items = append(items, domain.NewLineItem(domain.ItemOvertimePremium, w.PremiumPay.Mul(workers)))
	}
	if in.IncludeSocialInsurance {
		items = append(items, e.insuranceItems(w.Gross.Mul(workers))...)
	}
	return items
}

// employerItems lists the employer's costs on top of gross pay for all workers.
func (e *Engine) employerItems(in domain.LaborCostInput, w domain.WorkerCost, workers decimal.Decimal) []domain.LineItem {
	var items []domain.LineItem
	if in.IncludeSocialInsurance {
		items = append(items, e.insuranceItems(w.Gross.Mul(workers))...)
	}
	items = append(items, domain.NewLineItem(domain.ItemIndustrial, w.Industrial.Mul(workers)))
	if w.DevelopmentLevy.GreaterThan(decimal.Zero) {
		items = append(items, domain.NewLineItem(domain.ItemDevelopmentLevy, w.DevelopmentLevy.Mul(workers)))
	}
	if in.IncludeSeverance {
		items = append(items, domain.NewLineItem(domain.ItemSeverance, w.Severance.Mul(workers)))
	}
	return items
}

func (e *Engine) insuranceItems(gross decimal.Decimal) []domain.LineItem {
	ins := e.Rates.SocialInsurance
	return []domain.LineItem{
		domain.NewLineItem(domain.ItemPension, gross.Mul(ins.Pension)),
		domain.NewLineItem(domain.ItemHealth, gross.Mul(ins.Health)),
		domain.NewLineItem(domain.ItemEmployment, gross.Mul(ins.Employment)),
	}
}
