package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Prioritized insights from portfolio and manager metrics",
	Long: `Derive prioritized, human-readable insights from the portfolio
roll-up and the ranked manager list.

Examples:
  watchtower insights -i tasks.json
  watchtower insights -i tasks.json --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tasks, err := loadTasks()
		if err != nil {
			return err
		}

		result, err := svc.GenerateInsights(cmd.Context(), tasks)
		if err != nil {
			return fmt.Errorf("failed to generate insights: %w", err)
		}

		if jsonOutput {
			return printJSON(result.Insights)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  INSIGHTS")
		fmt.Println(strings.Repeat("=", 60))

		if len(result.Insights) == 0 {
			fmt.Println()
			fmt.Println("    Nothing noteworthy: all metrics are within thresholds.")
			fmt.Println()
			return nil
		}

		for _, insight := range result.Insights {
			fmt.Println()
			fmt.Printf("  [%s/%s] %s\n", insight.Type, insight.Priority, insight.Title)
			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("    %s\n", insight.Description)
			fmt.Printf("    Recommendation: %s\n", insight.Recommendation)
		}
		fmt.Println()

		return nil
	},
}
