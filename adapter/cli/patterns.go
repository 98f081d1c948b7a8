package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/application/queries"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Detect behavioural anti-patterns across managers",
	Long: `Evaluate the behavioural rules over the full manager list and
task set: chronic optimism, generic-resource overuse, critical-path
instability, and resource hoarding.

Examples:
  watchtower patterns -i tasks.json
  watchtower patterns -i tasks.json --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		tasks, err := loadTasks()
		if err != nil {
			return err
		}

		patterns, err := svc.DetectPatterns(cmd.Context(), queries.DetectPatternsQuery{Tasks: tasks})
		if err != nil {
			return fmt.Errorf("failed to detect patterns: %w", err)
		}

		if jsonOutput {
			return printJSON(patterns)
		}

		fmt.Println()
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  BEHAVIOURAL PATTERNS")
		fmt.Println(strings.Repeat("=", 60))

		if len(patterns) == 0 {
			fmt.Println()
			fmt.Println("    No anti-patterns detected.")
			fmt.Println()
			return nil
		}

		for _, p := range patterns {
			fmt.Println()
			fmt.Printf("  [%s] %s\n", strings.ToUpper(string(p.Severity)), p.Type)
			fmt.Println(strings.Repeat("-", 60))
			fmt.Printf("    %s\n", p.Description)
			fmt.Printf("    Recommendation: %s\n", p.Recommendation)
			fmt.Printf("    Affected managers: %s\n", strings.Join(p.AffectedManagers, ", "))
		}
		fmt.Println()

		return nil
	},
}
