package breakeven

import (
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what parameter to solve for
type OptimizationTarget string

const (
	OptimizeHourlyWage  OptimizationTarget = "hourly_wage"
	OptimizeWorkerCount OptimizationTarget = "worker_count"
	OptimizeTargetSales OptimizationTarget = "target_sales"
)

// Targets lists every supported optimization target.
var Targets = []OptimizationTarget{OptimizeHourlyWage, OptimizeWorkerCount, OptimizeTargetSales}

// Constraints define bounds for the solved parameter and the goal it must meet
type Constraints struct {
	// Hourly wage search range in won
	MinHourlyWage *decimal.Decimal `json:"min_hourly_wage,omitempty"`
	MaxHourlyWage *decimal.Decimal `json:"max_hourly_wage,omitempty"`

	// Head count search range
	MinWorkers *int `json:"min_workers,omitempty"`
	MaxWorkers *int `json:"max_workers,omitempty"`

	// Expected monthly sales; the base input's target sales when nil
	MonthlySales *decimal.Decimal `json:"monthly_sales,omitempty"`

	// Non-labor monthly fixed cost (rent, utilities, loans)
	OtherFixedCost decimal.Decimal `json:"other_fixed_cost"`

	// Operating profit that must remain after labor cost
	TargetProfit decimal.Decimal `json:"target_profit"`

	// Owner implied hourly wage goal for target_sales; the minimum wage when nil
	OwnerHourlyGoal *decimal.Decimal `json:"owner_hourly_goal,omitempty"`

	// Upper bound of the sales search
	MaxSales *decimal.Decimal `json:"max_sales,omitempty"`
}

// DefaultConstraints returns sensible default constraints
func DefaultConstraints() Constraints {
	minWorkers := 1
	maxWorkers := 20
	return Constraints{
		MinWorkers: &minWorkers,
		MaxWorkers: &maxWorkers,
	}
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	Base          domain.LaborCostInput `json:"base"`
	Target        OptimizationTarget    `json:"target"`
	Constraints   Constraints           `json:"constraints"`
	MaxIterations int                   `json:"max_iterations"`
	// Tolerance is the convergence width of binary searches, in won
	Tolerance decimal.Decimal `json:"tolerance"`
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	// Solved parameter, one of these is set
	OptimalHourlyWage  *decimal.Decimal `json:"optimal_hourly_wage,omitempty"`
	OptimalWorkerCount *int             `json:"optimal_worker_count,omitempty"`
	RequiredSales      *decimal.Decimal `json:"required_sales,omitempty"`

	// Results at the solved parameter
	MonthlySales      decimal.Decimal         `json:"monthly_sales"`
	EmployerTotalCost decimal.Decimal         `json:"employer_total_cost"`
	OperatingProfit   decimal.Decimal         `json:"operating_profit"`
	OwnerHourlyWage   decimal.Decimal         `json:"owner_hourly_wage"`
	LaborCost         *domain.LaborCostResult `json:"labor_cost,omitempty"`
	BEP               *domain.BEPResult       `json:"bep,omitempty"`
}

// MultiDimensionalResult contains the results of solving every target for one base
type MultiDimensionalResult struct {
	Results         []OptimizationResult `json:"results"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance in won
	MaxIterations int             // Maximum iterations
	// WageStep is the granularity of the reported hourly wage
	WageStep decimal.Decimal
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1000), // 1,000 won
		MaxIterations: 100,
		WageStep:      decimal.NewFromInt(10),
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate() error {
	if c.MinHourlyWage != nil && c.MaxHourlyWage != nil {
		if c.MinHourlyWage.GreaterThan(*c.MaxHourlyWage) {
			return &BreakEvenError{
				Operation: "validate_constraints",
				Message:   "min_hourly_wage cannot be greater than max_hourly_wage",
			}
		}
	}
	if c.MinHourlyWage != nil && !c.MinHourlyWage.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_hourly_wage must be positive",
		}
	}

	if c.MinWorkers != nil && c.MaxWorkers != nil && *c.MinWorkers > *c.MaxWorkers {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_workers cannot be greater than max_workers",
		}
	}
	if c.MinWorkers != nil && *c.MinWorkers < 1 {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_workers must be at least 1",
		}
	}

	if c.MonthlySales != nil && c.MonthlySales.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "monthly_sales cannot be negative",
		}
	}
	if c.OtherFixedCost.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "other_fixed_cost cannot be negative",
		}
	}
	if c.MaxSales != nil && !c.MaxSales.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "max_sales must be positive",
		}
	}

	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
