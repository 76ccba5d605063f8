package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/wonpay/internal/calculation"
	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wonpay %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "wonpay",
	Short: "Korean payroll and small-business calculator CLI",
	Long: `Payroll and small-business calculators in Korean won: break-even sales,
hourly wage with weekly holiday allowance, net salary, employer labor cost and
price change decisions.`,
	SilenceUsage: true,
}

// newEngine builds the calculation engine from the --rates and --debug flags.
// The returned cleanup flushes the debug logger.
func newEngine(cmd *cobra.Command) (*calculation.Engine, func(), error) {
	engine := calculation.NewEngine()
	if ratesFile, _ := cmd.Flags().GetString("rates"); ratesFile != "" {
		rates, err := config.NewInputParser().LoadRates(ratesFile)
		if err != nil {
			return nil, nil, err
		}
		engine = calculation.NewEngineWithRates(rates)
	}

	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		logger, err := config.NewLogger(config.LoggingConfig{}, "debug")
		if err != nil {
			return nil, nil, err
		}
		engine.SetLogger(logger.Sugar())
		return engine, func() { _ = logger.Sync() }, nil
	}
	return engine, func() {}, nil
}

// writeReport renders report with the --format formatter, to stdout or to a
// file under --output.
func writeReport(cmd *cobra.Command, report *domain.Report) error {
	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format %q (supported: %v)", format, output.FormatterNames())
	}

	if dir, _ := cmd.Flags().GetString("output"); dir != "" {
		path, err := output.WriteFormatted(f, report, dir, output.Extension(format))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate every scenario of a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine, done, err := newEngine(cmd)
		if err != nil {
			return err
		}
		defer done()

		report, err := engine.RunScenarios(cfg)
		if err != nil {
			return err
		}
		return writeReport(cmd, report)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a workbook file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Workbook %s is valid (%d scenarios)\n", args[0], len(cfg.Scenarios))
		return nil
	},
}

// addReportFlags registers the flags shared by every command that prints a report.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", config.DefaultOutputFormat, fmt.Sprintf("Output format %v", output.FormatterNames()))
	cmd.Flags().StringP("output", "o", "", "Write the report to a file in this directory instead of stdout")
}

func init() {
	rootCmd.PersistentFlags().String("rates", "", "Path to a rate table YAML file (default: built-in rates)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log calculation steps to stderr")

	addReportFlags(calculateCmd)

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
