package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/application/queries"
	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Portfolio-level metrics overview",
	Long: `Compute the portfolio roll-up over the full task set.

Shows:
- Task and project totals with completion percentage
- Forecast accuracy, duration variance, and resourcing metrics
- Critical-path health
- RAG distribution
- A summary of the record set itself

Examples:
  watchtower analyze -i tasks.json
  watchtower analyze -i tasks.json --json`,
	Aliases: []string{"portfolio", "a"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		tasks, err := loadTasks()
		if err != nil {
			return err
		}

		result, err := svc.GetPortfolioMetrics(cmd.Context(), queries.GetPortfolioMetricsQuery{Tasks: tasks})
		if err != nil {
			return fmt.Errorf("failed to compute portfolio metrics: %w", err)
		}

		if jsonOutput {
			return printJSON(result)
		}

		m := result.Metrics
		s := result.Summary

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  PORTFOLIO OVERVIEW")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println()
		fmt.Printf("    Projects: %d | Tasks: %d | Completed: %d (%.1f%%)\n",
			m.TotalProjects, m.TotalTasks, m.CompletedTasks, m.CompletedPct)
		fmt.Println()
		fmt.Printf("    Forecast Accuracy:    %.1f%%\n", m.ForecastAccuracy)
		fmt.Printf("    Duration Variance:    %+.1f%%\n", m.DurationVariance)
		fmt.Printf("    Generic Resources:    %.1f%%\n", m.GenericResourcePct)
		fmt.Printf("    Resource Utilisation: %.1f%%\n", m.ResourceUtilisation)
		fmt.Printf("    Critical Path Health: %.0f/100\n", m.CriticalPathHealth)

		fmt.Println()
		fmt.Println("  RAG DISTRIBUTION")
		fmt.Println(strings.Repeat("-", 60))
		for _, status := range []domain.RAGStatus{domain.RAGRed, domain.RAGAmber, domain.RAGGreen} {
			fmt.Printf("    %-6s %d (%.1f%%)\n", status, m.RAGDistribution[status], m.RAGShare(status))
		}

		fmt.Println()
		fmt.Println("  DATASET")
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("    Managers: %d | Portfolios: %d\n", s.TotalManagers, s.TotalPortfolios)
		fmt.Printf("    Budget: %.2f planned | %.2f spent\n", s.PlannedBudget, s.TotalSpent)
		fmt.Printf("    Hours: %.0f forecast | %.0f actual\n", s.ForecastHours, s.ActualHours)
		fmt.Printf("    Reassessments: %d | Ignored dependencies: %d\n",
			s.Reassessments, s.IgnoredDependencies)
		fmt.Println()

		return nil
	},
}
