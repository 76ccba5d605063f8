package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	config, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	config, err := NewInputParser().LoadFromFile(path)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, config, "Should return nil config")
	assert.Contains(t, err.Error(), "failed to parse YAML", "Should have specific error message")
}

func TestInputParser_LoadFromFile_SampleWorkbook(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join("testdata", "workbook.yaml"))

	require.NoError(t, err)
	require.Len(t, config.Scenarios, 5)

	labor := config.Scenarios[3]
	assert.Equal(t, domain.ScenarioLaborCost, labor.Type)
	require.NotNil(t, labor.LaborCost)
	assert.Equal(t, 2, labor.LaborCost.WorkerCount)
	assert.Equal(t, domain.IndustryRestaurant, labor.LaborCost.Industry)
	assert.True(t, labor.LaborCost.EmployerDevelopmentLevyRatePercent.Equal(decimal.RequireFromString("0.25")))

	assert.Equal(t, domain.SalaryMethodProgressive, config.Scenarios[2].Salary.Method)
}

func TestInputParser_ParseJSON(t *testing.T) {
	data := []byte(`{"scenarios":[{"name":"a","type":"bep","bep":{"fixed_cost":1000,"variable_rate_percent":40,"open_days_per_month":20,"hours_per_day":8}}]}`)

	config, err := NewInputParser().Parse(data)

	require.NoError(t, err)
	assert.True(t, config.Scenarios[0].BEP.FixedCost.Equal(decimal.NewFromInt(1000)))
}

func TestInputParser_ValidateConfiguration(t *testing.T) {
	parser := NewInputParser()
	bep := &domain.BEPInput{FixedCost: decimal.NewFromInt(1000)}

	tests := []struct {
		name    string
		config  domain.Configuration
		wantErr string
	}{
		{
			name:    "no scenarios",
			config:  domain.Configuration{},
			wantErr: "no scenarios provided",
		},
		{
			name:    "missing name",
			config:  domain.Configuration{Scenarios: []domain.Scenario{{Type: domain.ScenarioBEP, BEP: bep}}},
			wantErr: "name is required",
		},
		{
			name: "duplicate name",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioBEP, BEP: bep},
				{Name: "a", Type: domain.ScenarioBEP, BEP: bep},
			}},
			wantErr: "duplicate name",
		},
		{
			name:    "unknown type",
			config:  domain.Configuration{Scenarios: []domain.Scenario{{Name: "a", Type: "payroll"}}},
			wantErr: "unknown type",
		},
		{
			name:    "missing block",
			config:  domain.Configuration{Scenarios: []domain.Scenario{{Name: "a", Type: domain.ScenarioHourly, BEP: bep}}},
			wantErr: "missing \"hourly\" input block",
		},
		{
			name: "negative fixed cost",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioBEP, BEP: &domain.BEPInput{FixedCost: decimal.NewFromInt(-1)}},
			}},
			wantErr: "fixed_cost cannot be negative",
		},
		{
			name: "variable rate out of range",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioBEP, BEP: &domain.BEPInput{VariableRatePercent: decimal.NewFromInt(120)}},
			}},
			wantErr: "variable_rate_percent must be between 0 and 100",
		},
		{
			name: "unknown industry",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioLaborCost, LaborCost: &domain.LaborCostInput{Industry: "bakery"}},
			}},
			wantErr: "unknown industry",
		},
		{
			name: "unknown salary preset",
			config: domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioSalary, Salary: &domain.SalaryNetInput{RatePreset: "extreme"}},
			}},
			wantErr: "unknown rate_preset",
		},
		{
			name: "bad embedded rates",
			config: domain.Configuration{
				Rates:     &domain.Rates{SocialInsurance: domain.SocialInsuranceRates{Pension: decimal.NewFromInt(2)}},
				Scenarios: []domain.Scenario{{Name: "a", Type: domain.ScenarioBEP, BEP: bep}},
			},
			wantErr: "social_insurance.pension",
		},
		{
			name:   "valid",
			config: domain.Configuration{Scenarios: []domain.Scenario{{Name: "a", Type: domain.ScenarioBEP, BEP: bep}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(&tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParser_LoadRates(t *testing.T) {
	path := writeFile(t, "rates.yaml", `
minimum_hourly_wage: 10320
holiday_min_weekly_hours: 0
industry_presets:
  cafe: 0.9
`)

	rates, err := NewInputParser().LoadRates(path)

	require.NoError(t, err)
	assert.True(t, rates.MinimumHourlyWage.Equal(decimal.NewFromInt(10320)))
	assert.True(t, rates.HolidayThreshold().IsZero(), "explicit zero threshold is kept")
	assert.True(t, rates.IndustryPresets[domain.IndustryCafe].Equal(decimal.RequireFromString("0.9")))
	assert.True(t, rates.WeeksPerMonth.Equal(decimal.RequireFromString("4.345")), "missing fields use defaults")
}

func TestInputParser_LoadRates_BadBrackets(t *testing.T) {
	path := writeFile(t, "rates.yaml", `
income_tax:
  brackets:
    - up_to: 50000000
      rate: 0.15
    - up_to: 14000000
      rate: 0.06
`)

	_, err := NewInputParser().LoadRates(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "income_tax.brackets")
}

func TestInputParser_LoadRates_ExplicitZeros(t *testing.T) {
	path := writeFile(t, "rates.yaml", `
overtime_premium_rate: 0
social_insurance:
  pension: 0
  health: 0
  employment: 0
`)

	rates, err := NewInputParser().LoadRates(path)

	require.NoError(t, err)
	assert.True(t, rates.OvertimePremiumRate.IsZero())
	assert.True(t, rates.SocialInsurance.Total().IsZero())
	assert.True(t, rates.MinimumHourlyWage.Equal(decimal.NewFromInt(10030)))
}

func TestInputParser_ExtremeExponents(t *testing.T) {
	parser := NewInputParser()

	in := domain.BEPInput{
		FixedCost:           decimal.New(1, -20_000_000),
		VariableRatePercent: decimal.New(-3, -20_000_000),
		OpenDaysPerMonth:    26,
		HoursPerDay:         decimal.New(123456789, -27),
		TargetSales:         decimal.NewFromInt(12_000_000),
	}
	require.NoError(t, parser.ValidateScenario(&domain.Scenario{Type: domain.ScenarioBEP, BEP: &in}))
	assert.True(t, in.FixedCost.IsZero(), "values are normalized in place")
	assert.True(t, in.VariableRatePercent.IsZero())
	assert.Equal(t, int32(-domain.MaxScale), in.HoursPerDay.Exponent())

	labor := DefaultLaborCostInput()
	labor.IndustrialRate = labor.IndustrialRate.Edit(decimal.New(1, 20_000_000))
	err := parser.ValidateScenario(&domain.Scenario{Type: domain.ScenarioLaborCost, LaborCost: &labor})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "industrial_rate is out of range")

	price := domain.PriceDecisionInput{QuantityChangePercent: decimal.New(-1, 30_000_000)}
	err = parser.ValidateScenario(&domain.Scenario{Type: domain.ScenarioPriceDecision, PriceDecision: &price})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity_change_percent is out of range")
}

func TestInputParser_LoadRates_ExtremeExponents(t *testing.T) {
	path := writeFile(t, "rates.yaml", `
income_tax:
  brackets:
    - up_to: 1e20000000
      rate: 0.06
    - rate: 0.15
`)
	_, err := NewInputParser().LoadRates(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "income_tax.brackets[0].up_to is out of range")

	path = writeFile(t, "rates.yaml", "industry_presets:\n  cafe: 1e-20000000\n")
	rates, err := NewInputParser().LoadRates(path)
	require.NoError(t, err)
	assert.True(t, rates.IndustryPresets[domain.IndustryCafe].IsZero())
}
