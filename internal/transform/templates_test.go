package transform

import (
	"testing"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()
	registry.Register(Template{Name: "Test_Template", Description: "test"})

	got, ok := registry.Get("test_template")
	require.True(t, ok)
	assert.Equal(t, "Test_Template", got.Name)

	_, ok = registry.Get("TEST_TEMPLATE")
	assert.True(t, ok, "Lookup should be case-insensitive")

	_, ok = registry.Get("nonexistent")
	assert.False(t, ok)
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()

	assert.Equal(t, []string{
		"add_worker", "industry_cafe", "industry_delivery", "industry_office", "industry_restaurant",
		"no_severance", "no_social_insurance", "overtime_plus_10h", "remove_worker",
		"wage_up_10pct", "wage_up_5pct",
	}, registry.List())
}

func TestApplyTemplate(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := createTestInput()

	tests := []struct {
		name  string
		check func(t *testing.T, out domain.LaborCostInput)
	}{
		{"add_worker", func(t *testing.T, out domain.LaborCostInput) { assert.Equal(t, 3, out.WorkerCount) }},
		{"remove_worker", func(t *testing.T, out domain.LaborCostInput) { assert.Equal(t, 1, out.WorkerCount) }},
		{"wage_up_5pct", func(t *testing.T, out domain.LaborCostInput) { assert.True(t, out.HourlyWage.Equal(dec("10532"))) }},
		{"overtime_plus_10h", func(t *testing.T, out domain.LaborCostInput) {
			assert.True(t, out.MonthlyOvertimeHours.Equal(dec("10")))
		}},
		{"no_social_insurance", func(t *testing.T, out domain.LaborCostInput) { assert.False(t, out.IncludeSocialInsurance) }},
		{"industry_delivery", func(t *testing.T, out domain.LaborCostInput) {
			assert.Equal(t, domain.IndustryDelivery, out.Industry)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, ok := registry.Get(tt.name)
			require.True(t, ok)

			out, err := ApplyTemplate(base, tpl)
			require.NoError(t, err)
			tt.check(t, out)
		})
	}
}

func TestApplyTemplate_RemoveLastWorker(t *testing.T) {
	tpl, _ := CreateBuiltInTemplates().Get("remove_worker")
	base := createTestInput()
	base.WorkerCount = 1

	_, err := ApplyTemplate(base, tpl)

	assert.Error(t, err)
}
