package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	two          = decimal.NewFromInt(2)
	maxSalesCap  = decimal.New(1, 13)
	wageCeilingX = decimal.NewFromInt(5)
)

// Solver searches for the wage, head count or sales level at which a store still
// meets its profit goal
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// evaluation is the labor cost and break-even outcome of one candidate.
type evaluation struct {
	labor domain.LaborCostResult
	bep   domain.BEPResult
}

func (ev evaluation) profit() decimal.Decimal { return ev.bep.ProfitAtTarget }

// Optimize performs optimization based on the request
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	if err := req.Constraints.Validate(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	switch req.Target {
	case OptimizeHourlyWage:
		return s.optimizeHourlyWage(ctx, req)
	case OptimizeWorkerCount:
		return s.optimizeWorkerCount(ctx, req)
	case OptimizeTargetSales:
		return s.optimizeTargetSales(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
}

// evaluate runs the labor cost calculator for in and the break-even analysis of
// its cost plus the other fixed cost at the given sales.
func (s *Solver) evaluate(in domain.LaborCostInput, c Constraints, sales decimal.Decimal) evaluation {
	labor := s.Engine.ComputeLaborCost(in)
	return evaluation{labor: labor, bep: s.bepAt(labor, c, sales)}
}

func (s *Solver) bepAt(labor domain.LaborCostResult, c Constraints, sales decimal.Decimal) domain.BEPResult {
	link := labor.BEPLink
	link.FixedCost = link.FixedCost.Add(c.OtherFixedCost)
	link.TargetSales = sales
	return s.Engine.ComputeBEP(link)
}

func monthlySales(req OptimizationRequest) (decimal.Decimal, error) {
	sales := req.Base.TargetSales
	if req.Constraints.MonthlySales != nil {
		sales = *req.Constraints.MonthlySales
	}
	if !sales.IsPositive() {
		return decimal.Zero, &BreakEvenError{
			Operation: "optimize_" + string(req.Target),
			Message:   "expected monthly sales must be positive",
		}
	}
	return sales, nil
}

// optimizeHourlyWage finds the highest hourly wage at which the target profit holds
func (s *Solver) optimizeHourlyWage(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	sales, err := monthlySales(req)
	if err != nil {
		return nil, err
	}

	minWage := s.Engine.Rates.MinimumHourlyWage
	if req.Constraints.MinHourlyWage != nil {
		minWage = *req.Constraints.MinHourlyWage
	}
	maxWage := minWage.Mul(wageCeilingX)
	if req.Constraints.MaxHourlyWage != nil {
		maxWage = *req.Constraints.MaxHourlyWage
	}

	at := func(wage decimal.Decimal) evaluation {
		in := req.Base
		in.HourlyWage = wage
		return s.evaluate(in, req.Constraints, sales)
	}
	target := req.Constraints.TargetProfit

	low := at(minWage)
	if low.profit().LessThan(target) {
		return nil, &BreakEvenError{
			Operation: "optimize_hourly_wage",
			Message: fmt.Sprintf("target profit %s is not reachable even at an hourly wage of %s",
				target.StringFixed(0), minWage.StringFixed(0)),
		}
	}
	if high := at(maxWage); high.profit().GreaterThanOrEqual(target) {
		result := s.newResult(req, high, 1)
		result.OptimalHourlyWage = &maxWage
		result.Success = true
		result.ConvergenceInfo = "Upper bound of the wage range meets the target"
		return result, nil
	}

	lo, hi := minWage, maxWage
	iterations := 0
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(s.Options.WageStep) {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two)
		ev := at(mid)
		s.Engine.Logger.Debugf("solver: hourly_wage iteration %d wage=%s profit=%s", iterations, mid.StringFixed(0), ev.profit().StringFixed(0))
		if ev.profit().GreaterThanOrEqual(target) {
			lo = mid
		} else {
			hi = mid
		}
	}

	wage := floorTo(lo, s.Options.WageStep)
	if wage.LessThan(minWage) {
		wage = minWage
	}
	result := s.newResult(req, at(wage), iterations)
	result.OptimalHourlyWage = &wage
	result.Success = hi.Sub(lo).LessThanOrEqual(s.Options.WageStep)
	if result.Success {
		result.ConvergenceInfo = fmt.Sprintf("Binary search converged within %s won", s.Options.WageStep.StringFixed(0))
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}
	return result, nil
}

// optimizeWorkerCount finds the largest head count at which the target profit holds
func (s *Solver) optimizeWorkerCount(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	sales, err := monthlySales(req)
	if err != nil {
		return nil, err
	}

	minWorkers, maxWorkers := 1, 20
	if req.Constraints.MinWorkers != nil {
		minWorkers = *req.Constraints.MinWorkers
	}
	if req.Constraints.MaxWorkers != nil {
		maxWorkers = *req.Constraints.MaxWorkers
	}

	var best *OptimizationResult
	iterations := 0

	// Profit falls as workers are added, so the scan stops at the first miss.
	for n := minWorkers; n <= maxWorkers && iterations < req.MaxIterations; n++ {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		in := req.Base
		in.WorkerCount = n
		ev := s.evaluate(in, req.Constraints, sales)
		s.Engine.Logger.Debugf("solver: worker_count %d profit=%s", n, ev.profit().StringFixed(0))
		if ev.profit().LessThan(req.Constraints.TargetProfit) {
			break
		}
		count := n
		best = s.newResult(req, ev, iterations)
		best.OptimalWorkerCount = &count
	}

	if best == nil {
		return nil, &BreakEvenError{
			Operation: "optimize_worker_count",
			Message:   fmt.Sprintf("target profit is not reachable with %d worker(s)", minWorkers),
		}
	}
	best.Iterations = iterations
	best.Success = true
	best.ConvergenceInfo = fmt.Sprintf("Evaluated %d head counts", iterations)
	return best, nil
}

// optimizeTargetSales finds the monthly sales at which the owner earns the hourly
// goal after paying staff and other fixed costs
func (s *Solver) optimizeTargetSales(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	labor := s.Engine.ComputeLaborCost(req.Base)

	goal := s.Engine.Rates.MinimumHourlyWage
	if req.Constraints.OwnerHourlyGoal != nil {
		goal = *req.Constraints.OwnerHourlyGoal
	}
	met := func(b domain.BEPResult) bool {
		return b.ProfitAtTarget.GreaterThanOrEqual(req.Constraints.TargetProfit) &&
			b.OwnerImpliedHourlyWage.GreaterThanOrEqual(goal)
	}

	base := s.bepAt(labor, req.Constraints, decimal.Zero)
	if !base.BreakEvenSales.IsDefined() {
		return nil, &BreakEvenError{
			Operation: "optimize_target_sales",
			Message:   "variable rate leaves no contribution margin",
		}
	}

	hi := base.BreakEvenSales.Value.Mul(two)
	if hi.IsZero() {
		hi = req.Tolerance
	}
	ceiling := maxSalesCap
	if req.Constraints.MaxSales != nil {
		ceiling = *req.Constraints.MaxSales
	}
	for !met(s.bepAt(labor, req.Constraints, decimal.Min(hi, ceiling))) {
		if hi.GreaterThanOrEqual(ceiling) {
			return nil, &BreakEvenError{
				Operation: "optimize_target_sales",
				Message:   fmt.Sprintf("goal is not reachable below sales of %s", ceiling.StringFixed(0)),
			}
		}
		hi = hi.Mul(two)
	}
	hi = decimal.Min(hi, ceiling)

	lo := decimal.Zero
	iterations := 0
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThan(req.Tolerance) {
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo.Add(hi).Div(two)
		if met(s.bepAt(labor, req.Constraints, mid)) {
			hi = mid
		} else {
			lo = mid
		}
	}

	sales := hi.Ceil()
	result := s.newResult(req, evaluation{labor: labor, bep: s.bepAt(labor, req.Constraints, sales)}, iterations)
	result.RequiredSales = &sales
	result.Success = hi.Sub(lo).LessThanOrEqual(req.Tolerance)
	if result.Success {
		result.ConvergenceInfo = fmt.Sprintf("Binary search converged within %s won", req.Tolerance.StringFixed(0))
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)
	}
	return result, nil
}

// newResult creates an optimization result from an evaluation
func (s *Solver) newResult(req OptimizationRequest, ev evaluation, iterations int) *OptimizationResult {
	labor, bep := ev.labor, ev.bep
	return &OptimizationResult{
		Request:           req,
		Iterations:        iterations,
		MonthlySales:      bep.Input.TargetSales,
		EmployerTotalCost: labor.EmployerTotalCost,
		OperatingProfit:   bep.ProfitAtTarget,
		OwnerHourlyWage:   bep.OwnerImpliedHourlyWage,
		LaborCost:         &labor,
		BEP:               &bep,
	}
}

// floorTo rounds v down to a multiple of step
func floorTo(v, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return v.Floor()
	}
	return v.Div(step).Floor().Mul(step)
}
