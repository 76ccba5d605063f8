package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/wonpay/internal/breakeven"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
)

var (
	solveSales        decimal.Decimal
	solveOtherFixed   decimal.Decimal
	solveTargetProfit decimal.Decimal
	solveOwnerWage    decimal.Decimal
)

var solveCmd = &cobra.Command{
	Use:   "solve [input-file]",
	Short: "Solve for the wage, head count or sales that still meet a profit goal",
	Long: `Work the labor cost calculator backwards:

  hourly_wage   highest hourly wage that keeps the target profit
  worker_count  most workers the store can staff at the current wage
  target_sales  monthly sales needed for the owner hourly wage goal
  all           every target above`,
	Example: `  wonpay solve --target hourly_wage --sales 30000000 --other-fixed 4000000 --target-profit 3000000
  wonpay solve --workers 2 --other-fixed 4000000
  wonpay solve examples/workbook.yaml --base "홀 직원 2명" --target worker_count -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	base, err := solveBase(cmd, args)
	if err != nil {
		return err
	}

	constraints := breakeven.DefaultConstraints()
	constraints.OtherFixedCost = solveOtherFixed
	constraints.TargetProfit = solveTargetProfit
	if cmd.Flags().Changed("sales") {
		sales := solveSales
		constraints.MonthlySales = &sales
	}
	if cmd.Flags().Changed("owner-wage") {
		goal := solveOwnerWage
		constraints.OwnerHourlyGoal = &goal
	}
	if maxWorkers, _ := cmd.Flags().GetInt("max-workers"); maxWorkers > 0 {
		constraints.MaxWorkers = &maxWorkers
	}

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()
	solver := breakeven.NewDefaultSolver(engine)

	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q (supported: table, json)", format)
	}
	target, _ := cmd.Flags().GetString("target")
	out := cmd.OutOrStdout()

	if target == "all" {
		result, err := solver.OptimizeAll(cmd.Context(), base, constraints)
		if err != nil {
			return err
		}
		if format == "json" {
			text, err := (&breakeven.JSONFormatter{Pretty: true}).FormatMultiDimensional(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, text)
			return nil
		}
		fmt.Fprint(out, (&breakeven.TableFormatter{}).FormatMultiDimensional(result))
		return nil
	}

	if !knownTarget(breakeven.OptimizationTarget(target)) {
		return fmt.Errorf("unknown target %q (supported: %v, all)", target, breakeven.Targets)
	}
	result, err := solver.Optimize(cmd.Context(), breakeven.OptimizationRequest{
		Base:        base,
		Target:      breakeven.OptimizationTarget(target),
		Constraints: constraints,
	})
	if err != nil {
		return err
	}
	if format == "json" {
		text, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		return nil
	}
	fmt.Fprint(out, (&breakeven.TableFormatter{}).Format(result))
	return nil
}

// solveBase reads the base labor cost input from a workbook scenario or from
// the labor cost flags.
func solveBase(cmd *cobra.Command, args []string) (domain.LaborCostInput, error) {
	if len(args) == 0 {
		base, err := laborInputFromFlags(cmd)
		if err != nil {
			return base, err
		}
		if err := config.NewInputParser().ValidateScenario(&domain.Scenario{Type: domain.ScenarioLaborCost, LaborCost: &base}); err != nil {
			return base, fmt.Errorf("invalid input: %w", err)
		}
		return base, nil
	}

	cfg, err := config.NewInputParser().LoadFromFile(args[0])
	if err != nil {
		return domain.LaborCostInput{}, err
	}
	name, _ := cmd.Flags().GetString("base")
	if name == "" {
		if name, err = firstLaborScenario(cfg); err != nil {
			return domain.LaborCostInput{}, err
		}
	}
	return scenarioInput(cfg, name)
}

func knownTarget(t breakeven.OptimizationTarget) bool {
	for _, known := range breakeven.Targets {
		if t == known {
			return true
		}
	}
	return false
}

func init() {
	solveCmd.Flags().String("target", "all", "What to solve for (hourly_wage, worker_count, target_sales, all)")
	solveCmd.Flags().String("base", "", "Labor cost scenario of the workbook (default: the first one)")
	decimalVar(solveCmd, &solveSales, "sales", decimal.Zero, "Expected monthly sales in won (default: the scenario target sales)")
	decimalVar(solveCmd, &solveOtherFixed, "other-fixed", decimal.Zero, "Non-labor monthly fixed cost in won")
	decimalVar(solveCmd, &solveTargetProfit, "target-profit", decimal.Zero, "Operating profit that must remain in won")
	decimalVar(solveCmd, &solveOwnerWage, "owner-wage", decimal.Zero, "Owner hourly wage goal for target_sales (default: the minimum wage)")
	solveCmd.Flags().Int("max-workers", 0, "Upper bound of the worker_count search (default 20)")
	solveCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	addLaborFlags(solveCmd)

	rootCmd.AddCommand(solveCmd)
}
