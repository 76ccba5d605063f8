package calculation

import (
	"testing"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSalaryNet_InsuranceOnly(t *testing.T) {
	res := ComputeSalaryNet(domain.SalaryNetInput{
		GrossMonthlyPay: dec("3000000"),
		DependentCount:  1,
		RatePreset:      domain.TaxPresetStandard,
	})

	assert.True(t, res.TotalDeductions.Equal(dec("277350")))
	assert.True(t, res.NetPay.Equal(dec("2722650")))
	assert.True(t, res.DeductionRatePercent.Equal(dec("9.245")))
	require.Len(t, res.Items, 3)
	assert.Equal(t, domain.ItemPension, res.Items[0].Code)
	assert.Nil(t, res.IncomeTax)
}

func TestComputeSalaryNet_Simple(t *testing.T) {
	in := domain.SalaryNetInput{
		GrossMonthlyPay:  dec("3000000"),
		DependentCount:   1,
		RatePreset:       domain.TaxPresetStandard,
		IncludeIncomeTax: true,
		Method:           domain.SalaryMethodSimple,
	}

	res := ComputeSalaryNet(in)

	require.Len(t, res.Items, 5)
	assert.True(t, res.Items[3].Amount.Equal(dec("60000")))
	assert.True(t, res.Items[4].Amount.Equal(dec("6000")))
	assert.True(t, res.NetPay.Equal(dec("2656650")))
	assert.Equal(t, domain.SalaryMethodSimple, res.Method)
}

func TestComputeSalaryNet_SimpleDependentAdjustment(t *testing.T) {
	in := domain.SalaryNetInput{
		GrossMonthlyPay:  dec("3000000"),
		RatePreset:       domain.TaxPresetHeavy,
		IncludeIncomeTax: true,
		Method:           domain.SalaryMethodSimple,
	}

	in.DependentCount = 3
	res := ComputeSalaryNet(in)
	// 3,000,000 * 0.035 * 0.90
	assert.True(t, res.Items[3].Amount.Equal(dec("94500")))

	in.DependentCount = 12
	res = ComputeSalaryNet(in)
	// adjustment floors at 0.75
	assert.True(t, res.Items[3].Amount.Equal(dec("78750")))
}

func TestComputeSalaryNet_Progressive(t *testing.T) {
	res := ComputeSalaryNet(domain.SalaryNetInput{
		GrossMonthlyPay:  dec("3000000"),
		DependentCount:   1,
		IncludeIncomeTax: true,
	})

	assert.Equal(t, domain.SalaryMethodProgressive, res.Method, "progressive is the default method")
	require.NotNil(t, res.IncomeTax)
	tax := res.IncomeTax
	assert.True(t, tax.AnnualGross.Equal(dec("36000000")))
	assert.True(t, tax.EarnedIncomeDeduction.Equal(dec("10650000")))
	assert.True(t, tax.InsuranceDeduction.Equal(dec("3328200")))
	assert.True(t, tax.TaxBase.Equal(dec("20521800")))
	assert.True(t, tax.CalculatedTax.Equal(dec("1818270")))
	assert.True(t, tax.EarnedIncomeCredit.Equal(dec("716000")), "credit is capped by the limit for 36M")
	assert.True(t, tax.DeterminedTax.Equal(dec("1102270")))

	require.Len(t, res.Items, 5)
	assert.True(t, res.Items[3].Amount.Equal(dec("91856")))
	assert.True(t, res.Items[4].Amount.Equal(dec("9186")))
	assert.True(t, res.NetPay.Equal(dec("2621608")))
}

func TestComputeSalaryNet_ProgressiveLowIncomeOwesNothing(t *testing.T) {
	res := ComputeSalaryNet(domain.SalaryNetInput{
		GrossMonthlyPay:  dec("1000000"),
		DependentCount:   4,
		IncludeIncomeTax: true,
	})

	require.NotNil(t, res.IncomeTax)
	assert.True(t, res.IncomeTax.DeterminedTax.IsZero())
	assert.True(t, res.Items[3].Amount.IsZero())
}

func TestComputeSalaryNet_ZeroGross(t *testing.T) {
	res := ComputeSalaryNet(domain.SalaryNetInput{IncludeIncomeTax: true, RatePreset: "unknown"})

	assert.True(t, res.DeductionRatePercent.IsZero())
	assert.True(t, res.NetPay.IsZero())
	assert.Equal(t, domain.TaxPresetStandard, res.Input.RatePreset)
	assert.Equal(t, 1, res.Input.DependentCount)
}

func TestProgressive(t *testing.T) {
	brackets := []domain.Bracket{
		{UpTo: dec("100"), Rate: dec("0.1")},
		{UpTo: dec("200"), Rate: dec("0.2")},
		{Rate: dec("0.5")},
	}

	assert.True(t, progressive(dec("50"), brackets).Equal(dec("5")))
	assert.True(t, progressive(dec("150"), brackets).Equal(dec("20")))
	assert.True(t, progressive(dec("300"), brackets).Equal(dec("80")))
	assert.True(t, progressive(dec("0"), brackets).IsZero())
}
