package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/application/queries"
)

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "Per-manager metrics ranked by performance score",
	Long: `Partition the task set by functional manager and compute each
group's behavioural metrics and weighted performance score.

Examples:
  watchtower managers -i tasks.json
  watchtower managers -i tasks.json --json`,
	Aliases: []string{"m"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		tasks, err := loadTasks()
		if err != nil {
			return err
		}

		managers, err := svc.GetManagerMetrics(cmd.Context(), queries.GetManagerMetricsQuery{Tasks: tasks})
		if err != nil {
			return fmt.Errorf("failed to compute manager metrics: %w", err)
		}

		if jsonOutput {
			return printJSON(managers)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  MANAGER PERFORMANCE")
		fmt.Println(strings.Repeat("=", 60))

		for i, m := range managers {
			fmt.Println()
			fmt.Printf("  %d. %s (score %d/100)\n", i+1, m.Manager, m.PerformanceScore)
			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("    Tasks: %d total | %d completed | %d on-time starts | %d on-time ends\n",
				m.TotalTasks, m.CompletedTasks, m.OnTimeStarts, m.OnTimeEnds)
			fmt.Printf("    Forecast Accuracy: %.1f%% | Duration Variance: %+.1f%%\n",
				m.ForecastAccuracy, m.DurationVariance)
			fmt.Printf("    Generic Resources: %.1f%% | Utilisation: %.1f%% | CP Health: %.0f\n",
				m.GenericResourcePct, m.ResourceUtilisation, m.CriticalPathHealth)
			fmt.Printf("    RAG: %d red | %d amber | %d green\n",
				m.RedTasks, m.AmberTasks, m.GreenTasks)
		}
		fmt.Println()

		return nil
	},
}
