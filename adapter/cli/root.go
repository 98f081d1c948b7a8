// Package cli contains the cobra command tree for the watchtower binary.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/application"
	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
	"github.com/watchtower-ppm/watchtower/internal/portfolio/infrastructure/ingest"
	"github.com/watchtower-ppm/watchtower/internal/portfolio/infrastructure/rules"
	"github.com/watchtower-ppm/watchtower/pkg/config"
)

var (
	inputPath      string
	thresholdsPath string
	jsonOutput     bool
	verbose        bool

	logger *slog.Logger
	cfg    *config.Config
	svc    *application.Service
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "watchtower",
	Short: "Watchtower - portfolio delivery analytics",
	Long: `Watchtower derives behavioural health metrics, RAG predictions,
anti-pattern detections, and prioritized insights from a normalized
set of project-task records.

The input is a JSON array of task records produced by the upstream
normalization pipeline; every command recomputes its results from
that file on each run.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if logger == nil {
			logger = slog.Default()
		}
		if cfg != nil {
			if inputPath == "" {
				inputPath = cfg.TasksPath
			}
			if thresholdsPath == "" {
				thresholdsPath = cfg.ThresholdsPath
			}
		}

		thresholds, err := rules.Load(thresholdsPath)
		if err != nil {
			return fmt.Errorf("failed to load thresholds: %w", err)
		}
		svc = application.NewService(thresholds, logger)

		if verbose {
			logger.Info("command start", "command", cmd.CommandPath(), "input", inputPath)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "path to normalized task records (JSON)")
	rootCmd.PersistentFlags().StringVarP(&thresholdsPath, "thresholds", "t", "", "path to a YAML thresholds file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(managersCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command tree with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// SetConfig supplies environment defaults for flag values.
func SetConfig(c *config.Config) {
	cfg = c
}

func loadTasks() ([]domain.Task, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("no task file given: pass --input or set WATCHTOWER_TASKS")
	}
	return ingest.NewJSONSource(inputPath).Load()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
