package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/application/queries"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Per-project metrics with predicted RAG and top risks",
	Long: `Partition the task set by project and compute each project's
metrics, its current RAG (majority vote across tasks), the rule-based
predicted RAG, and its top risk factors.

Examples:
  watchtower projects -i tasks.json
  watchtower projects -i tasks.json --json`,
	Aliases: []string{"p"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		tasks, err := loadTasks()
		if err != nil {
			return err
		}

		projects, err := svc.GetProjectMetrics(cmd.Context(), queries.GetProjectMetricsQuery{Tasks: tasks})
		if err != nil {
			return fmt.Errorf("failed to compute project metrics: %w", err)
		}

		if jsonOutput {
			return printJSON(projects)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  PROJECT HEALTH")
		fmt.Println(strings.Repeat("=", 60))

		for _, p := range projects {
			fmt.Println()
			fmt.Printf("  %s\n", p.Project)
			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("    Current RAG: %s | Predicted RAG: %s\n", p.CurrentRAG, p.PredictedRAG)
			fmt.Printf("    Tasks: %d total | %.1f%% complete | %.1f%% on critical path\n",
				p.TotalTasks, p.CompletedPct, p.CriticalPathTaskPct)
			fmt.Printf("    Forecast Accuracy: %.1f%% | Duration Variance: %+.1f%%\n",
				p.ForecastAccuracy, p.DurationVariance)
			fmt.Printf("    Generic Resources: %.1f%% | Utilisation: %.1f%%\n",
				p.GenericResourcePct, p.ResourceUtilisation)
			if len(p.TopRisks) > 0 {
				fmt.Println("    Top risks:")
				for _, risk := range p.TopRisks {
					fmt.Printf("      - %s\n", risk)
				}
			}
		}
		fmt.Println()

		return nil
	},
}
