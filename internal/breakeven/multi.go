package breakeven

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
)

// OptimizeAll solves every target for the same base input and constraints
func (s *Solver) OptimizeAll(ctx context.Context, base domain.LaborCostInput, constraints Constraints) (*MultiDimensionalResult, error) {
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	var results []OptimizationResult
	for _, target := range Targets {
		req := OptimizationRequest{
			Base:          base,
			Target:        target,
			Constraints:   constraints,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			s.Engine.Logger.Infof("solver: %s skipped: %v", target, err)
			continue
		}
		if result.Success {
			results = append(results, *result)
		}
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_all",
			Message:   "no successful optimizations found",
		}
	}

	md := &MultiDimensionalResult{Results: results}
	md.Recommendations = recommendations(base, results)
	return md, nil
}

// recommendations turns solved targets into short guidance for the owner
func recommendations(base domain.LaborCostInput, results []OptimizationResult) []string {
	var recs []string
	for _, r := range results {
		switch {
		case r.OptimalHourlyWage != nil:
			rec := fmt.Sprintf("목표 이익을 지키면서 줄 수 있는 최대 시급은 %s입니다.", output.FormatWon(*r.OptimalHourlyWage))
			if base.HourlyWage.GreaterThan(*r.OptimalHourlyWage) {
				rec += " 현재 시급은 이 수준을 넘습니다."
			}
			recs = append(recs, rec)
		case r.OptimalWorkerCount != nil:
			rec := fmt.Sprintf("예상 매출로 감당할 수 있는 인원은 최대 %d명입니다.", *r.OptimalWorkerCount)
			if base.WorkerCount > *r.OptimalWorkerCount {
				rec += fmt.Sprintf(" 현재 %d명은 목표 이익을 밑돕니다.", base.WorkerCount)
			}
			recs = append(recs, rec)
		case r.RequiredSales != nil:
			recs = append(recs, fmt.Sprintf("사장님 목표 시급을 얻으려면 월매출 %s이 필요합니다.", output.FormatWon(*r.RequiredSales)))
		}
	}
	return recs
}
