package breakeven

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(n int) *int { return &n }

func TestDefaultConstraints(t *testing.T) {
	c := DefaultConstraints()

	require.NotNil(t, c.MinWorkers)
	require.NotNil(t, c.MaxWorkers)
	assert.Equal(t, 1, *c.MinWorkers)
	assert.Equal(t, 20, *c.MaxWorkers)
	assert.NoError(t, c.Validate())
}

func TestDefaultSolverOptions(t *testing.T) {
	o := DefaultSolverOptions()

	assert.True(t, o.Tolerance.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, 100, o.MaxIterations)
	assert.True(t, o.WageStep.Equal(decimal.NewFromInt(10)))
}

func TestConstraints_Validate(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		msg  string
	}{
		{"wage range inverted", Constraints{MinHourlyWage: decPtr("20000"), MaxHourlyWage: decPtr("10000")}, "min_hourly_wage cannot be greater"},
		{"zero minimum wage", Constraints{MinHourlyWage: decPtr("0")}, "min_hourly_wage must be positive"},
		{"worker range inverted", Constraints{MinWorkers: intPtr(5), MaxWorkers: intPtr(2)}, "min_workers cannot be greater"},
		{"zero workers", Constraints{MinWorkers: intPtr(0)}, "min_workers must be at least 1"},
		{"negative sales", Constraints{MonthlySales: decPtr("-1")}, "monthly_sales cannot be negative"},
		{"negative fixed cost", Constraints{OtherFixedCost: decimal.NewFromInt(-1)}, "other_fixed_cost cannot be negative"},
		{"zero max sales", Constraints{MaxSales: decPtr("0")}, "max_sales must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			require.Error(t, err)

			var be *BreakEvenError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, "validate_constraints", be.Operation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestConstraints_Validate_Valid(t *testing.T) {
	c := Constraints{
		MinHourlyWage: decPtr("10030"),
		MaxHourlyWage: decPtr("20000"),
		MinWorkers:    intPtr(1),
		MaxWorkers:    intPtr(3),
		MonthlySales:  decPtr("30000000"),
	}
	assert.NoError(t, c.Validate())
}

func TestBreakEvenError(t *testing.T) {
	cause := errors.New("boom")
	err := &BreakEvenError{Operation: "optimize", Message: "failed", Cause: cause}

	assert.Equal(t, "optimize: failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "optimize: failed", (&BreakEvenError{Operation: "optimize", Message: "failed"}).Error())
}
