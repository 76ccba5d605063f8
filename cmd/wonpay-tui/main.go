package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/wonpay/internal/config"
	"github.com/rgehrsitz/wonpay/internal/domain"
	"github.com/rgehrsitz/wonpay/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "wonpay-tui",
	Short: "Interactive labor cost calculator",
	Long: `Adjust wage, hours, head count and insurance options with the arrow keys
and watch the employer cost, worker take-home pay and break-even sales update.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := config.DefaultLaborCostInput()

		industry, _ := cmd.Flags().GetString("industry")
		input.Industry = domain.ParseIndustry(industry)
		if string(input.Industry) != industry {
			return fmt.Errorf("unknown industry %q (supported: %v)", industry, domain.Industries)
		}
		if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
			input.WorkerCount = workers
		}

		ratesPath, _ := cmd.Flags().GetString("rates")
		p := tea.NewProgram(
			tui.NewModel(input, ratesPath),
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running TUI: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().String("rates", "", "Path to a rate table YAML file")
	rootCmd.Flags().String("industry", string(domain.IndustryCafe), fmt.Sprintf("Starting industry %v", domain.Industries))
	rootCmd.Flags().Int("workers", 1, "Starting number of workers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
