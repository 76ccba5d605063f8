package breakeven

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func baseInput() domain.LaborCostInput {
	return domain.LaborCostInput{
		HourlyWage:              dec("10030"),
		MonthlyHours:            dec("209"),
		WeeklyWorkDays:          5,
		WorkerCount:             1,
		IncludeHolidayAllowance: true,
		IncludeSocialInsurance:  true,
		IncludeSeverance:        true,
		Industry:                domain.IndustryCafe,
		VariableRatePercent:     dec("35"),
		OpenDays:                26,
		HoursPerDay:             dec("10"),
		TargetSales:             dec("30000000"),
	}
}

func baseConstraints() Constraints {
	c := DefaultConstraints()
	c.OtherFixedCost = dec("3000000")
	c.TargetProfit = dec("3000000")
	return c
}

func TestNewSolver(t *testing.T) {
	engine := calculation.NewEngine()
	solver := NewSolver(engine, DefaultSolverOptions())

	require.NotNil(t, solver)
	assert.Same(t, engine, solver.Engine)
	assert.NotNil(t, NewSolver(nil, DefaultSolverOptions()).Engine, "Should fall back to a default engine")
	assert.Equal(t, DefaultSolverOptions().MaxIterations, NewDefaultSolver(engine).Options.MaxIterations)
}

func TestSolver_Optimize_UnsupportedTarget(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	result, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: "unsupported_target"})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported optimization target")
}

func TestSolver_Optimize_InvalidConstraints(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	c := baseConstraints()
	c.MinWorkers = intPtr(0)

	result, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: OptimizeWorkerCount, Constraints: c})

	assert.Nil(t, result)
	var be *BreakEvenError
	assert.True(t, errors.As(err, &be))
}

func TestSolver_OptimizeHourlyWage(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	req := OptimizationRequest{Base: baseInput(), Target: OptimizeHourlyWage, Constraints: baseConstraints()}

	result, err := solver.Optimize(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Success, result.ConvergenceInfo)
	require.NotNil(t, result.OptimalHourlyWage)

	wage := *result.OptimalHourlyWage
	assert.True(t, wage.Mod(dec("10")).IsZero(), "Wage should be reported in 10 won steps")
	assert.True(t, result.OperatingProfit.GreaterThanOrEqual(req.Constraints.TargetProfit))
	assert.True(t, result.MonthlySales.Equal(dec("30000000")))

	above := req.Base
	above.HourlyWage = wage.Add(dec("20"))
	ev := solver.evaluate(above, req.Constraints, dec("30000000"))
	assert.True(t, ev.profit().LessThan(req.Constraints.TargetProfit), "A slightly higher wage should miss the target")
}

func TestSolver_OptimizeHourlyWage_Unreachable(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	c := baseConstraints()
	c.TargetProfit = dec("50000000")

	_, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: OptimizeHourlyWage, Constraints: c})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestSolver_OptimizeHourlyWage_UpperBound(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	c := baseConstraints()
	c.MaxHourlyWage = decPtr("12000")

	result, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: OptimizeHourlyWage, Constraints: c})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.OptimalHourlyWage.Equal(dec("12000")))
}

func TestSolver_OptimizeHourlyWage_RequiresSales(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	in := baseInput()
	in.TargetSales = decimal.Zero

	_, err := solver.Optimize(context.Background(), OptimizationRequest{Base: in, Target: OptimizeHourlyWage, Constraints: baseConstraints()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected monthly sales must be positive")
}

func TestSolver_OptimizeWorkerCount(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	req := OptimizationRequest{Base: baseInput(), Target: OptimizeWorkerCount, Constraints: baseConstraints()}

	result, err := solver.Optimize(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.OptimalWorkerCount)

	n := *result.OptimalWorkerCount
	assert.GreaterOrEqual(t, n, 1)
	assert.True(t, result.OperatingProfit.GreaterThanOrEqual(req.Constraints.TargetProfit))
	assert.Equal(t, n, result.LaborCost.Input.WorkerCount)

	more := req.Base
	more.WorkerCount = n + 1
	ev := solver.evaluate(more, req.Constraints, dec("30000000"))
	assert.True(t, ev.profit().LessThan(req.Constraints.TargetProfit))
}

func TestSolver_OptimizeWorkerCount_MonthlySalesOverride(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	c := baseConstraints()
	low := c
	low.MonthlySales = decPtr("15000000")
	high := c
	high.MonthlySales = decPtr("60000000")

	lowRes, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: OptimizeWorkerCount, Constraints: low})
	require.NoError(t, err)
	highRes, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: OptimizeWorkerCount, Constraints: high})
	require.NoError(t, err)

	assert.Less(t, *lowRes.OptimalWorkerCount, *highRes.OptimalWorkerCount)
}

func TestSolver_OptimizeWorkerCount_Canceled(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Optimize(ctx, OptimizationRequest{Base: baseInput(), Target: OptimizeWorkerCount, Constraints: baseConstraints()})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolver_OptimizeTargetSales(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	c := baseConstraints()
	c.OwnerHourlyGoal = decPtr("15000")
	req := OptimizationRequest{Base: baseInput(), Target: OptimizeTargetSales, Constraints: c}

	result, err := solver.Optimize(context.Background(), req)
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotNil(t, result.RequiredSales)

	sales := *result.RequiredSales
	assert.True(t, result.OwnerHourlyWage.GreaterThanOrEqual(dec("15000")))
	assert.True(t, result.OperatingProfit.GreaterThanOrEqual(c.TargetProfit))

	below := solver.bepAt(*result.LaborCost, c, sales.Sub(dec("1001")))
	assert.True(t, below.OwnerImpliedHourlyWage.LessThan(dec("15000")), "Sales just below the answer should miss the goal")
}

func TestSolver_OptimizeTargetSales_NoMargin(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	in := baseInput()
	in.VariableRatePercent = dec("100")

	_, err := solver.Optimize(context.Background(), OptimizationRequest{Base: in, Target: OptimizeTargetSales, Constraints: baseConstraints()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contribution margin")
}

func TestSolver_OptimizeTargetSales_Ceiling(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	c := baseConstraints()
	c.MaxSales = decPtr("5000000")

	_, err := solver.Optimize(context.Background(), OptimizationRequest{Base: baseInput(), Target: OptimizeTargetSales, Constraints: c})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestSolver_OptimizeAll(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())

	md, err := solver.OptimizeAll(context.Background(), baseInput(), baseConstraints())
	require.NoError(t, err)

	assert.Len(t, md.Results, 3)
	assert.Len(t, md.Recommendations, 3)
}

func TestFormatters(t *testing.T) {
	solver := NewDefaultSolver(calculation.NewEngine())
	md, err := solver.OptimizeAll(context.Background(), baseInput(), baseConstraints())
	require.NoError(t, err)

	tf := &TableFormatter{}
	text := tf.Format(&md.Results[0])
	assert.Contains(t, text, "손익분기 역산 결과")
	assert.Contains(t, text, "최대 시급")
	assert.Contains(t, tf.FormatMultiDimensional(md), "worker_count")

	jf := &JSONFormatter{Pretty: true}
	out, err := jf.FormatMultiDimensional(md)
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	single, err := (&JSONFormatter{}).Format(&md.Results[1])
	require.NoError(t, err)
	assert.Contains(t, single, `"optimal_worker_count"`)
}
