package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformRegistry_List(t *testing.T) {
	names := NewTransformRegistry().List()

	assert.Contains(t, names, "adjust_workers")
	assert.Contains(t, names, "switch_industry")
	assert.Len(t, names, 8)
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec string
		want ScenarioTransform
	}{
		{"adjust_workers:delta=-1", &AdjustWorkers{Delta: -1}},
		{"scale_wage:percent=7.5", &ScaleWage{Percent: dec("7.5")}},
		{"set_hourly_wage:wage=12000", &SetHourlyWage{Wage: dec("12000")}},
		{"add_overtime: hours = 8", &AddOvertime{Hours: dec("8")}},
		{"set_severance:include=false", &SetSeverance{Include: false}},
		{"set_social_insurance:include=true", &SetSocialInsurance{Include: true}},
		{"set_holiday_allowance:include=0", &SetHolidayAllowance{Include: false}},
		{"switch_industry:industry=office", &SwitchIndustry{Industry: "office"}},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := registry.ParseTransformSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name(), got.Name())
			assert.Equal(t, tt.want.Description(), got.Description())
		})
	}
}

func TestTransformRegistry_ParseTransformSpec_VanishingValue(t *testing.T) {
	got, err := NewTransformRegistry().ParseTransformSpec("add_overtime:hours=1e-20000000")
	require.NoError(t, err)
	require.IsType(t, &AddOvertime{}, got)
	assert.True(t, got.(*AddOvertime).Hours.IsZero())
}

func TestTransformRegistry_ParseTransformSpec_Errors(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec string
		msg  string
	}{
		{"adjust_workers", "invalid transform spec format"},
		{"adjust_workers:delta", "invalid parameter format"},
		{"unknown:x=1", "unknown transform"},
		{"adjust_workers:count=1", "requires 'delta'"},
		{"adjust_workers:delta=one", "invalid delta value"},
		{"scale_wage:percent=abc", "invalid percent value"},
		{"scale_wage:percent=1e20000000", "percent is out of range"},
		{"set_severance:include=maybe", "invalid include value"},
		{"switch_industry:", "requires 'industry'"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := registry.ParseTransformSpec(tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
