package calculation

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeSalaryNet estimates take-home pay from a gross monthly salary.
//
// Social insurance is the same in both methods. Income tax is either the
// progressive annual model (default) or a flat preset rate reduced by 5% per
// dependent beyond the first, floored at 75%.
func (e *Engine) ComputeSalaryNet(in domain.SalaryNetInput) domain.SalaryNetResult {
	in = sanitizeSalary(in)
	ins := e.Rates.SocialInsurance
	gross := in.GrossMonthlyPay

	pension := gross.Mul(ins.Pension)
	health := gross.Mul(ins.Health)
	employment := gross.Mul(ins.Employment)

	items := []domain.LineItem{
		domain.NewLineItem(domain.ItemPension, pension),
		domain.NewLineItem(domain.ItemHealth, health),
		domain.NewLineItem(domain.ItemEmployment, employment),
	}

	res := domain.SalaryNetResult{Input: in, Method: in.Method}
	if in.IncludeIncomeTax {
		var incomeTax decimal.Decimal
		if in.Method == domain.SalaryMethodSimple {
			incomeTax = e.simpleIncomeTax(gross, in.RatePreset, in.DependentCount)
		} else {
			detail := e.progressiveIncomeTax(gross, in.DependentCount, pension.Add(health).Add(employment))
			res.IncomeTax = &detail
			incomeTax = detail.DeterminedTax.Div(twelve).Round(0)
		}
		localTax := incomeTax.Mul(e.Rates.IncomeTax.LocalTaxRate)
		if in.Method != domain.SalaryMethodSimple {
			localTax = localTax.Round(0)
		}
		items = append(items,
			domain.NewLineItem(domain.ItemIncomeTax, incomeTax),
			domain.NewLineItem(domain.ItemLocalTax, localTax),
		)
	}

	res.Items = items
	res.TotalDeductions = domain.SumItems(items)
	res.NetPay = gross.Sub(res.TotalDeductions)
	if gross.GreaterThan(decimal.Zero) {
		res.DeductionRatePercent = res.TotalDeductions.Div(gross).Mul(hundred)
	}
	return res
}

func (e *Engine) simpleIncomeTax(gross decimal.Decimal, preset domain.TaxPreset, dependents int) decimal.Decimal {
	rules := e.Rates.IncomeTax
	rate, ok := rules.Presets[preset]
	if !ok {
		rate = rules.Presets[domain.TaxPresetStandard]
	}
	adj := one.Sub(decimal.NewFromInt(int64(dependents - 1)).Mul(rules.DependentStep))
	adj = clamp(adj, rules.DependentFloor, one)
	return gross.Mul(rate).Mul(adj)
}

// progressiveIncomeTax annualizes a monthly salary and applies the earned income
// deduction, personal deductions, the bracket schedule and the earned income tax credit.
func (e *Engine) progressiveIncomeTax(monthlyGross decimal.Decimal, dependents int, monthlyInsurance decimal.Decimal) domain.IncomeTaxDetail {
	rules := e.Rates.IncomeTax
	annual := monthlyGross.Mul(twelve)

	eid := progressive(annual, rules.EarnedIncomeDeduction)
	if rules.EarnedIncomeDeductionCap.GreaterThan(decimal.Zero) {
		eid = decimal.Min(eid, rules.EarnedIncomeDeductionCap)
	}
	personal := rules.PersonalDeductionPerPerson.Mul(decimal.NewFromInt(int64(dependents)))
	insurance := monthlyInsurance.Mul(twelve)

	base := maxZero(annual.Sub(eid).Sub(personal).Sub(insurance))
	calculated := progressive(base, rules.Brackets)
	credit := progressive(calculated, rules.EarnedIncomeCredit)
	if limit, ok := creditLimit(annual, rules.CreditLimits); ok {
		credit = decimal.Min(credit, limit)
	}

	return domain.IncomeTaxDetail{
		AnnualGross:           annual,
		EarnedIncomeDeduction: eid,
		PersonalDeduction:     personal,
		InsuranceDeduction:    insurance,
		TaxBase:               base,
		CalculatedTax:         calculated,
		EarnedIncomeCredit:    credit,
		DeterminedTax:         maxZero(calculated.Sub(credit)),
	}
}

// progressive applies a marginal-rate schedule to amount.
func progressive(amount decimal.Decimal, brackets []domain.Bracket) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero
	for _, b := range brackets {
		if amount.LessThanOrEqual(lower) {
			break
		}
		upper := amount
		open := b.UpTo.IsZero()
		if !open && b.UpTo.LessThan(amount) {
			upper = b.UpTo
		}
		total = total.Add(upper.Sub(lower).Mul(b.Rate))
		if open {
			break
		}
		lower = b.UpTo
	}
	return total
}

func creditLimit(annualGross decimal.Decimal, limits []domain.CreditLimit) (decimal.Decimal, bool) {
	for _, l := range limits {
		if l.UpTo.IsZero() || annualGross.LessThanOrEqual(l.UpTo) {
			reduced := l.Base.Sub(maxZero(annualGross.Sub(l.From)).Mul(l.Slope))
			return decimal.Max(reduced, l.Floor), true
		}
	}
	return decimal.Zero, false
}
