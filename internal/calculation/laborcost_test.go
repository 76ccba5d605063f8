package calculation

import (
	"testing"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cafeStaff() domain.LaborCostInput {
	return domain.LaborCostInput{
		HourlyWage:                         dec("10030"),
		MonthlyHours:                       dec("209"),
		WeeklyWorkDays:                     5,
		WorkerCount:                        1,
		IncludeHolidayAllowance:            true,
		IncludeSocialInsurance:             true,
		IncludeSeverance:                   true,
		Industry:                           domain.IndustryCafe,
		EmployerDevelopmentLevyRatePercent: dec("0.25"),
		VariableRatePercent:                dec("35"),
		OpenDays:                           26,
		HoursPerDay:                        dec("10"),
		TargetSales:                        dec("30000000"),
	}
}

func TestComputeLaborCost_Plain(t *testing.T) {
	res := ComputeLaborCost(domain.LaborCostInput{
		HourlyWage:     dec("10000"),
		MonthlyHours:   dec("100"),
		WeeklyWorkDays: 5,
		WorkerCount:    1,
	})

	assert.True(t, res.WorkerGrossTotal.Equal(dec("1000000")))
	assert.True(t, res.WorkerNetTotal.Equal(dec("1000000")))
	assert.True(t, res.EmployerTotalCost.Equal(dec("1000000")))
	assert.True(t, res.EmployerImpliedHourlyCost.Equal(dec("10000")))
	require.Len(t, res.WorkerItems, 1)
	require.Len(t, res.EmployerItems, 1, "industrial insurance is always listed")
	assert.Equal(t, domain.ItemIndustrial, res.EmployerItems[0].Code)
	assert.Equal(t, domain.IndustryDirect, res.Input.Industry)
}

func TestComputeLaborCost_FullBreakdown(t *testing.T) {
	res := ComputeLaborCost(cafeStaff())
	w := res.PerWorker

	assert.Equal(t, "2096270", w.BasePay.String())
	assert.Equal(t, "419254", w.HolidayPay.Round(0).String())
	assert.True(t, w.Gross.Equal(w.BasePay.Add(w.HolidayPay)))
	assert.True(t, w.EmployerInsurance.Equal(w.Gross.Mul(dec("0.09245"))))
	assert.True(t, w.Industrial.Equal(w.Gross.Mul(dec("0.01"))))
	assert.True(t, w.Net.Equal(w.Gross.Sub(w.EmployeeInsurance)))
	assert.True(t, w.Severance.Equal(w.Gross.Div(dec("12"))))

	assert.True(t, res.IndustrialRate.Value.Equal(dec("1.0")))
	assert.Equal(t, domain.IndustryCafe, res.IndustrialRate.LastAppliedPreset)

	require.Len(t, res.WorkerItems, 5)
	require.Len(t, res.EmployerItems, 6)
	assert.Equal(t, domain.ItemDevelopmentLevy, res.EmployerItems[4].Code)
	assert.Equal(t, domain.ItemSeverance, res.EmployerItems[5].Code)
	assert.True(t, res.EmployerTotalCost.Equal(res.WorkerGrossTotal.Add(domain.SumItems(res.EmployerItems))))
}

func TestComputeLaborCost_LinearInWorkerCount(t *testing.T) {
	in := cafeStaff()
	one := ComputeLaborCost(in)

	in.WorkerCount = 2
	two := ComputeLaborCost(in)

	assert.True(t, two.EmployerTotalCost.Equal(one.EmployerTotalCost.Mul(dec("2"))))
	assert.True(t, two.WorkerNetTotal.Equal(one.WorkerNetTotal.Mul(dec("2"))))
	assert.True(t, two.EmployerImpliedHourlyCost.Round(6).Equal(one.EmployerImpliedHourlyCost.Round(6)))
	assert.True(t, two.HireThreshold.PerWorkerEmployerCost.Equal(one.HireThreshold.PerWorkerEmployerCost))
}

func TestComputeLaborCost_HireThreshold(t *testing.T) {
	res := ComputeLaborCost(cafeStaff())
	hire := res.HireThreshold

	require.True(t, hire.NeededMonthlySales.IsDefined())
	assert.True(t, hire.NeededMonthlySales.Value.Mul(dec("0.65")).Round(4).Equal(hire.PerWorkerEmployerCost.Round(4)))
	assert.True(t, hire.NeededDailySales.Value.Mul(dec("26")).Round(4).Equal(hire.NeededMonthlySales.Value.Round(4)))

	in := cafeStaff()
	in.VariableRatePercent = dec("100")
	res = ComputeLaborCost(in)
	assert.False(t, res.HireThreshold.NeededMonthlySales.IsDefined())
	assert.False(t, res.HireThreshold.NeededDailySales.IsDefined())
}

func TestComputeLaborCost_SimulationKeepsOvertimePremium(t *testing.T) {
	res := ComputeLaborCost(domain.LaborCostInput{
		HourlyWage:           dec("10000"),
		MonthlyHours:         dec("100"),
		WeeklyWorkDays:       5,
		WorkerCount:          1,
		MonthlyOvertimeHours: dec("10"),
	})

	require.Len(t, res.Simulation, 4)
	assert.True(t, res.Simulation[0].MonthlyHours.Equal(dec("80")))
	assert.True(t, res.Simulation[0].WorkerGrossTotal.Equal(dec("850000")))
	assert.True(t, res.Simulation[3].WorkerGrossTotal.Equal(dec("1550000")))
	assert.True(t, res.Simulation[1].EmployerTotalCost.Equal(res.EmployerTotalCost))
}

func TestComputeLaborCost_UserEditedRateSurvivesPreset(t *testing.T) {
	in := cafeStaff()
	in.Industry = domain.IndustryDelivery
	in.IndustrialRate = domain.RateField{}.Edit(dec("3"))

	res := ComputeLaborCost(in)

	assert.True(t, res.IndustrialRate.Value.Equal(dec("3")))
	assert.True(t, res.IndustrialRate.UserEdited)
	assert.True(t, res.PerWorker.Industrial.Equal(res.PerWorker.Gross.Mul(dec("0.03"))))
}

func TestComputeLaborCost_BEPRoundTrip(t *testing.T) {
	res := ComputeLaborCost(cafeStaff())

	linked := ComputeBEP(res.BEPLink)
	direct := ComputeBEP(domain.BEPInput{
		FixedCost:           res.EmployerTotalCost.Round(0),
		VariableRatePercent: dec("35"),
		OpenDaysPerMonth:    26,
		HoursPerDay:         dec("10"),
		TargetSales:         dec("30000000"),
	})

	assert.True(t, res.BEPLink.FixedCost.Equal(res.EmployerTotalCost.Round(0)))
	assert.True(t, linked.BreakEvenSales.Equal(direct.BreakEvenSales))
}

func TestComputeLaborCost_ClampsInput(t *testing.T) {
	res := ComputeLaborCost(domain.LaborCostInput{
		HourlyWage:     dec("10000"),
		MonthlyHours:   dec("-1"),
		WorkerCount:    0,
		WeeklyWorkDays: 0,
		IndustrialRate: domain.RateField{Value: dec("150")},
	})

	assert.Equal(t, 1, res.Input.WorkerCount)
	assert.Equal(t, 1, res.Input.WeeklyWorkDays)
	assert.True(t, res.IndustrialRate.Value.Equal(dec("99")))
	assert.True(t, res.EmployerImpliedHourlyCost.IsZero(), "zero hours give zero implied cost")
}

func TestComputeLaborCost_Idempotent(t *testing.T) {
	assert.Equal(t, ComputeLaborCost(cafeStaff()), ComputeLaborCost(cafeStaff()))
}
