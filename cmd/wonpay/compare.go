package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/wonpay/internal/compare"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/transform"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a labor cost scenario against staffing changes",
	Long: `Compare a labor cost scenario against built-in templates, ad-hoc transforms
or other labor cost scenarios of the same workbook.

Without an input file the base scenario comes from the labor cost flags.`,
	Example: `  # Built-in templates against a flag-driven base
  wonpay compare --workers 2 --with add_worker,wage_up_5pct

  # Ad-hoc transforms
  wonpay compare --transform scale_wage:percent=7.5 --transform adjust_workers:delta=-1

  # Workbook scenarios
  wonpay compare examples/workbook.yaml --base "홀 직원 2명" --with add_worker --format csv
  wonpay compare workbook.yaml --base "현재" --scenarios "주말 알바 추가,시급 인상"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
		registry := transform.CreateBuiltInTemplates()
		fmt.Fprintln(out, "Available templates:")
		for _, name := range registry.List() {
			t, _ := registry.Get(name)
			fmt.Fprintf(out, "  %-22s %s\n", name, t.Description)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Available transforms (--transform name:key=value):")
		for _, name := range transform.NewTransformRegistry().List() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	}

	baseName, _ := cmd.Flags().GetString("base")
	templates := splitList(mustString(cmd, "with"))
	scenarioNames := splitList(mustString(cmd, "scenarios"))
	specs, _ := cmd.Flags().GetStringArray("transform")

	var transforms []transform.ScenarioTransform
	registry := transform.NewTransformRegistry()
	for _, spec := range specs {
		t, err := registry.ParseTransformSpec(spec)
		if err != nil {
			return err
		}
		transforms = append(transforms, t)
	}

	engine, done, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer done()
	ce := compare.NewCompareEngine(engine)

	opts := compare.CompareOptions{
		BaseScenarioName: baseName,
		Templates:        templates,
		Transforms:       transforms,
	}
	var compSet *compare.ComparisonSet
	if len(args) == 1 {
		compSet, err = compareWorkbook(cmd, ce, args[0], opts, scenarioNames)
	} else {
		compSet, err = compareFlags(cmd, ce, opts, scenarioNames)
	}
	if err != nil {
		return err
	}
	if len(compSet.AlternativeResults) == 0 {
		return fmt.Errorf("nothing to compare: pass --with, --transform or --scenarios")
	}

	format, _ := cmd.Flags().GetString("format")
	detail, _ := cmd.Flags().GetBool("detail")
	var text string
	switch format {
	case "table":
		text = (&compare.TableFormatter{}).Format(compSet)
	case "compact":
		text = (&compare.TableFormatter{}).FormatCompact(compSet)
	case "csv":
		text, err = (&compare.CSVFormatter{}).Format(compSet)
	case "json":
		text, err = (&compare.JSONFormatter{Pretty: true, IncludeDetail: detail}).Format(compSet)
	default:
		return fmt.Errorf("unsupported format %q (supported: table, compact, csv, json)", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}

// compareWorkbook compares a labor cost scenario of a workbook against templates
// and transforms, or against other scenarios of the same workbook.
func compareWorkbook(cmd *cobra.Command, ce *compare.CompareEngine, path string, opts compare.CompareOptions, scenarioNames []string) (*compare.ComparisonSet, error) {
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	if cfg.Rates != nil {
		ce.CalcEngine.Rates = cfg.Rates.WithDefaults()
	}
	if opts.BaseScenarioName == "" {
		if opts.BaseScenarioName, err = firstLaborScenario(cfg); err != nil {
			return nil, err
		}
	}
	var compSet *compare.ComparisonSet
	if len(scenarioNames) > 0 {
		compSet, err = ce.CompareScenarios(cmd.Context(), cfg, opts.BaseScenarioName, scenarioNames)
	} else {
		var base domain.LaborCostInput
		if base, err = scenarioInput(cfg, opts.BaseScenarioName); err != nil {
			return nil, err
		}
		compSet, err = ce.Compare(cmd.Context(), base, opts)
	}
	if err != nil {
		return nil, err
	}
	compSet.ConfigPath = path
	return compSet, nil
}

func compareFlags(cmd *cobra.Command, ce *compare.CompareEngine, opts compare.CompareOptions, scenarioNames []string) (*compare.ComparisonSet, error) {
	if len(scenarioNames) > 0 {
		return nil, fmt.Errorf("--scenarios needs an input file")
	}
	base, err := laborInputFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	if err := config.NewInputParser().ValidateScenario(&domain.Scenario{Type: domain.ScenarioLaborCost, LaborCost: &base}); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if opts.BaseScenarioName == "" {
		opts.BaseScenarioName = "현재"
	}
	return ce.Compare(cmd.Context(), base, opts)
}

func firstLaborScenario(cfg *domain.Configuration) (string, error) {
	for _, sc := range cfg.Scenarios {
		if sc.Type == domain.ScenarioLaborCost {
			return sc.Name, nil
		}
	}
	return "", fmt.Errorf("workbook has no labor_cost scenario")
}

func scenarioInput(cfg *domain.Configuration, name string) (domain.LaborCostInput, error) {
	for _, sc := range cfg.Scenarios {
		if sc.Name == name {
			if sc.LaborCost == nil {
				return domain.LaborCostInput{}, fmt.Errorf("scenario %q is a %s scenario, not labor_cost", name, sc.Type)
			}
			return *sc.LaborCost, nil
		}
	}
	return domain.LaborCostInput{}, fmt.Errorf("scenario %q not found", name)
}

func mustString(cmd *cobra.Command, name string) string {
	s, _ := cmd.Flags().GetString(name)
	return s
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func init() {
	compareCmd.Flags().String("base", "", "Base labor cost scenario name (default: first labor_cost scenario of the workbook)")
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().String("scenarios", "", "Comma-separated labor_cost scenario names of the workbook to compare")
	compareCmd.Flags().StringArray("transform", nil, "Ad-hoc transform name:key=value,... (repeatable)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().Bool("detail", false, "Include the full labor cost result of every scenario in json output")
	compareCmd.Flags().Bool("list-templates", false, "List all available templates and transforms")
	addLaborFlags(compareCmd)

	rootCmd.AddCommand(compareCmd)
}
