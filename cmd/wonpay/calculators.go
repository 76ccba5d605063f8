package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
)

// decimalValue is a pflag.Value for won amounts and percentages. Thousands
// separators are accepted.
type decimalValue struct {
	v *decimal.Decimal
}

func newDecimalValue(def decimal.Decimal, p *decimal.Decimal) *decimalValue {
	*p = def
	return &decimalValue{v: p}
}

func (d *decimalValue) String() string { return d.v.String() }

func (d *decimalValue) Set(s string) error {
	v, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	v, ok := domain.NormalizeScale(v)
	if !ok {
		return fmt.Errorf("out of range: %q", s)
	}
	*d.v = v
	return nil
}

func (d *decimalValue) Type() string { return "decimal" }

func decimalVar(cmd *cobra.Command, p *decimal.Decimal, name string, def decimal.Decimal, usage string) {
	cmd.Flags().Var(newDecimalValue(def, p), name, usage)
}

// runSingle validates one calculator input, runs it and prints the report.
func runSingle(cmd *cobra.Command, sc domain.Scenario) error {
	if err := config.NewInputParser().ValidateScenario(&sc); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()

	report, err := engine.RunScenarios(&domain.Configuration{Scenarios: []domain.Scenario{sc}})
	if err != nil {
		return err
	}
	return writeReport(cmd, report)
}

var bepIn domain.BEPInput

var bepCmd = &cobra.Command{
	Use:   "bep",
	Short: "Break-even monthly sales of a store",
	Example: `  wonpay bep --fixed-cost 5200000 --variable-rate 38
  wonpay bep --fixed-cost 6200000 --target-sales 15000000 -f json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := bepIn
		return runSingle(cmd, domain.Scenario{Name: "손익분기", Type: domain.ScenarioBEP, BEP: &in})
	},
}

var hourlyIn domain.HourlyInput

var hourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Weekly and monthly pay from an hourly wage",
	Example: `  wonpay hourly --wage 10030 --hours 8 --days 5
  wonpay hourly --days 2 --overtime 4 --overtime-base-pay`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := hourlyIn
		return runSingle(cmd, domain.Scenario{Name: "시급 계산", Type: domain.ScenarioHourly, Hourly: &in})
	},
}

var (
	salaryIn     domain.SalaryNetInput
	salaryPreset string
	salaryMethod string
)

var salaryCmd = &cobra.Command{
	Use:   "salary",
	Short: "Net monthly pay after social insurance and income tax",
	Example: `  wonpay salary --gross 3000000 --dependents 1
  wonpay salary --gross 3000000 --method simple --preset light`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := salaryIn
		in.RatePreset = domain.TaxPreset(salaryPreset)
		in.Method = domain.SalaryMethod(salaryMethod)
		return runSingle(cmd, domain.Scenario{Name: "실수령액", Type: domain.ScenarioSalary, Salary: &in})
	},
}

var (
	laborIn       domain.LaborCostInput
	laborIndustry string
	laborRate     decimal.Decimal
)

var laborCmd = &cobra.Command{
	Use:   "labor",
	Short: "Employer labor cost, hire threshold and linked break-even",
	Long: `Calculates what the staff costs the employer each month, what the workers
take home and the sales needed to afford one more hire.

The industrial accident insurance rate follows the --industry preset unless
--industrial-rate is given.`,
	Example: `  wonpay labor --wage 10030 --workers 2 --industry restaurant
  wonpay labor --industry delivery --industrial-rate 1.5 --no-severance`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := laborInputFromFlags(cmd)
		if err != nil {
			return err
		}
		return runSingle(cmd, domain.Scenario{Name: "인건비", Type: domain.ScenarioLaborCost, LaborCost: &in})
	},
}

// laborInputFromFlags applies the toggle and industry flags of cmd to laborIn.
// Commands other than labor reuse it through addLaborFlags.
func laborInputFromFlags(cmd *cobra.Command) (domain.LaborCostInput, error) {
	in := laborIn
	in.Industry = domain.Industry(laborIndustry)
	if domain.ParseIndustry(laborIndustry) != in.Industry {
		return in, fmt.Errorf("unknown industry %q (supported: %v)", laborIndustry, domain.Industries)
	}
	if cmd.Flags().Changed("industrial-rate") {
		in.IndustrialRate = in.IndustrialRate.Edit(laborRate)
	}
	for flag, target := range map[string]*bool{
		"no-holiday":   &in.IncludeHolidayAllowance,
		"no-insurance": &in.IncludeSocialInsurance,
		"no-severance": &in.IncludeSeverance,
	} {
		if off, _ := cmd.Flags().GetBool(flag); off {
			*target = false
		}
	}
	return in, nil
}

// addLaborFlags registers the labor cost input flags on cmd, seeded from the
// calculator defaults.
func addLaborFlags(cmd *cobra.Command) {
	def := config.DefaultLaborCostInput()
	laborIn = def

	decimalVar(cmd, &laborIn.HourlyWage, "wage", def.HourlyWage, "Hourly wage in won")
	decimalVar(cmd, &laborIn.MonthlyHours, "monthly-hours", def.MonthlyHours, "Paid hours per worker per month, including the weekly holiday")
	cmd.Flags().IntVar(&laborIn.WeeklyWorkDays, "days", def.WeeklyWorkDays, "Work days per week")
	cmd.Flags().IntVar(&laborIn.WorkerCount, "workers", def.WorkerCount, "Number of workers")
	decimalVar(cmd, &laborIn.MonthlyOvertimeHours, "overtime", def.MonthlyOvertimeHours, "Overtime hours per worker per month")
	cmd.Flags().StringVar(&laborIndustry, "industry", string(def.Industry), fmt.Sprintf("Industry preset %v", domain.Industries))
	decimalVar(cmd, &laborRate, "industrial-rate", decimal.Zero, "Industrial accident insurance rate in percent (overrides the industry preset)")
	decimalVar(cmd, &laborIn.EmployerDevelopmentLevyRatePercent, "levy-rate", def.EmployerDevelopmentLevyRatePercent, "Employer-only employment stability levy in percent")
	cmd.Flags().Bool("no-holiday", false, "Exclude the weekly holiday allowance")
	cmd.Flags().Bool("no-insurance", false, "Exclude social insurance")
	cmd.Flags().Bool("no-severance", false, "Exclude the severance reserve")
	decimalVar(cmd, &laborIn.VariableRatePercent, "variable-rate", def.VariableRatePercent, "Variable cost share of sales in percent")
	cmd.Flags().IntVar(&laborIn.OpenDays, "open-days", def.OpenDays, "Open days per month")
	decimalVar(cmd, &laborIn.HoursPerDay, "hours-per-day", def.HoursPerDay, "Owner working hours per open day")
	decimalVar(cmd, &laborIn.TargetSales, "target-sales", def.TargetSales, "Expected monthly sales in won")
}

var priceIn domain.PriceDecisionInput

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Profit impact of a price change",
	Example: `  wonpay price --current 4500 --new 5000 --unit-cost 1500 --quantity 3000
  wonpay price --current 4500 --new 5000 --unit-cost 1500 --quantity 3000 --change -10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := priceIn
		return runSingle(cmd, domain.Scenario{Name: "가격 결정", Type: domain.ScenarioPriceDecision, PriceDecision: &in})
	},
}

func init() {
	bepDef := config.DefaultBEPInput()
	decimalVar(bepCmd, &bepIn.FixedCost, "fixed-cost", bepDef.FixedCost, "Monthly fixed cost in won")
	decimalVar(bepCmd, &bepIn.VariableRatePercent, "variable-rate", bepDef.VariableRatePercent, "Variable cost share of sales in percent")
	bepCmd.Flags().IntVar(&bepIn.OpenDaysPerMonth, "open-days", bepDef.OpenDaysPerMonth, "Open days per month")
	decimalVar(bepCmd, &bepIn.HoursPerDay, "hours-per-day", bepDef.HoursPerDay, "Owner working hours per open day")
	decimalVar(bepCmd, &bepIn.TargetSales, "target-sales", bepDef.TargetSales, "Expected monthly sales in won")

	decimalVar(hourlyCmd, &hourlyIn.HourlyWage, "wage", decimal.NewFromInt(10_030), "Hourly wage in won")
	decimalVar(hourlyCmd, &hourlyIn.HoursPerDay, "hours", decimal.NewFromInt(8), "Scheduled hours per day, including breaks")
	decimalVar(hourlyCmd, &hourlyIn.DaysPerWeek, "days", decimal.NewFromInt(5), "Work days per week")
	decimalVar(hourlyCmd, &hourlyIn.BreakMinutesPerDay, "break", decimal.NewFromInt(60), "Unpaid break minutes per day")
	decimalVar(hourlyCmd, &hourlyIn.OvertimeHoursPerWeek, "overtime", decimal.Zero, "Overtime hours per week")
	hourlyCmd.Flags().BoolVar(&hourlyIn.IncludeHolidayAllowance, "holiday", true, "Include the weekly holiday allowance when eligible")
	hourlyCmd.Flags().BoolVar(&hourlyIn.IncludeOvertimeBasePay, "overtime-base-pay", false, "Add the base pay of overtime hours on top of the premium")

	decimalVar(salaryCmd, &salaryIn.GrossMonthlyPay, "gross", decimal.NewFromInt(3_000_000), "Gross monthly pay in won")
	salaryCmd.Flags().IntVar(&salaryIn.DependentCount, "dependents", 1, "Dependents including the worker")
	salaryCmd.Flags().BoolVar(&salaryIn.IncludeIncomeTax, "income-tax", true, "Deduct income tax and local income tax")
	salaryCmd.Flags().StringVar(&salaryMethod, "method", string(domain.SalaryMethodProgressive), "Income tax method (progressive, simple)")
	salaryCmd.Flags().StringVar(&salaryPreset, "preset", string(domain.TaxPresetStandard), "Flat rate preset of the simple method (standard, light, heavy)")

	addLaborFlags(laborCmd)

	decimalVar(priceCmd, &priceIn.CurrentPrice, "current", decimal.Zero, "Current unit price in won")
	decimalVar(priceCmd, &priceIn.NewPrice, "new", decimal.Zero, "New unit price in won")
	decimalVar(priceCmd, &priceIn.VariableCostPerUnit, "unit-cost", decimal.Zero, "Variable cost per unit in won")
	decimalVar(priceCmd, &priceIn.CurrentQuantity, "quantity", decimal.Zero, "Units sold per month at the current price")
	decimalVar(priceCmd, &priceIn.QuantityChangePercent, "change", decimal.Zero, "Expected change in units sold, in percent")
	decimalVar(priceCmd, &priceIn.FixedCost, "fixed-cost", decimal.Zero, "Monthly fixed cost in won")
	_ = priceCmd.MarkFlagRequired("current")
	_ = priceCmd.MarkFlagRequired("new")

	for _, c := range []*cobra.Command{bepCmd, hourlyCmd, salaryCmd, laborCmd, priceCmd} {
		addReportFlags(c)
		rootCmd.AddCommand(c)
	}
}
