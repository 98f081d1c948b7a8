// Package services contains application services for the portfolio
// analytics bounded context.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// InsightGenerator turns portfolio and manager metrics into prioritized,
// human-readable insight records under fixed thresholds.
type InsightGenerator struct {
	thresholds domain.InsightThresholds
	logger     *slog.Logger
}

// NewInsightGenerator creates a new insight generator.
func NewInsightGenerator(thresholds domain.InsightThresholds, logger *slog.Logger) *InsightGenerator {
	return &InsightGenerator{
		thresholds: thresholds,
		logger:     logger,
	}
}

// GenerationResult contains the results of insight generation.
type GenerationResult struct {
	InsightsGenerated int
	Insights          []*domain.Insight
}

// GenerateInsights evaluates the fixed insight rules over the portfolio
// roll-up (which embeds the manager list). The result is sorted by
// priority descending; equal priorities keep emission order (portfolio
// accuracy, generic usage, red share, poor performers, top performer).
func (g *InsightGenerator) GenerateInsights(ctx context.Context, portfolio domain.PortfolioMetrics) (*GenerationResult, error) {
	result := &GenerationResult{Insights: []*domain.Insight{}}

	g.generatePortfolioInsights(portfolio, result)
	g.generateManagerInsights(portfolio.Managers, result)

	sortInsights(result.Insights)

	for _, insight := range result.Insights {
		g.logger.InfoContext(ctx, "generated insight",
			"type", insight.Type,
			"priority", insight.Priority,
			"title", insight.Title,
		)
	}

	return result, nil
}

func (g *InsightGenerator) generatePortfolioInsights(portfolio domain.PortfolioMetrics, result *GenerationResult) {
	if portfolio.TotalTasks == 0 {
		return
	}

	if portfolio.ForecastAccuracy < g.thresholds.ForecastAccuracy {
		g.add(result, domain.NewInsight(
			domain.InsightTypeDanger,
			domain.InsightPriorityHigh,
			"Portfolio forecast accuracy is low",
			fmt.Sprintf("Only %.1f%% of completed work finished by its planned end date.", portfolio.ForecastAccuracy),
			"Audit estimation practice across managers; the delivery dates currently promised are not credible.",
		))
	}

	if portfolio.GenericResourcePct > g.thresholds.GenericResourcePct {
		g.add(result, domain.NewInsight(
			domain.InsightTypeWarning,
			domain.InsightPriorityHigh,
			"Heavy reliance on generic resources",
			fmt.Sprintf("%.1f%% of all tasks are assigned to placeholder resources.", portfolio.GenericResourcePct),
			"Drive resource naming before work starts; unnamed work slips silently.",
		))
	}

	if redShare := portfolio.RAGShare(domain.RAGRed); redShare > g.thresholds.RedSharePct {
		g.add(result, domain.NewInsight(
			domain.InsightTypeDanger,
			domain.InsightPriorityHigh,
			"Large share of Red tasks",
			fmt.Sprintf("%.1f%% of RAG-tagged tasks are Red.", redShare),
			"Escalate the Red population for recovery planning before it spreads to dependent work.",
		))
	}
}

func (g *InsightGenerator) generateManagerInsights(managers []domain.ManagerMetrics, result *GenerationResult) {
	for _, m := range managers {
		if m.PerformanceScore < g.thresholds.PoorPerformanceScore {
			g.add(result, domain.NewInsight(
				domain.InsightTypeWarning,
				domain.InsightPriorityMedium,
				fmt.Sprintf("%s is underperforming", m.Manager),
				fmt.Sprintf("Performance score %d/100 across %d tasks.", m.PerformanceScore, m.TotalTasks),
				"Review this manager's planning data quality and workload with them.",
			))
		}
	}

	// Managers arrive ranked, so the first one over the bar is the top
	// performer; one success insight at most.
	for _, m := range managers {
		if m.PerformanceScore > g.thresholds.TopPerformanceScore {
			g.add(result, domain.NewInsight(
				domain.InsightTypeSuccess,
				domain.InsightPriorityLow,
				fmt.Sprintf("%s is performing strongly", m.Manager),
				fmt.Sprintf("Performance score %d/100 across %d tasks.", m.PerformanceScore, m.TotalTasks),
				"Capture what this manager does differently and share it with the wider group.",
			))
			break
		}
	}
}

func (g *InsightGenerator) add(result *GenerationResult, insight *domain.Insight) {
	result.Insights = append(result.Insights, insight)
	result.InsightsGenerated++
}

// sortInsights orders by priority descending, stable within a tier so
// emission order is preserved.
func sortInsights(insights []*domain.Insight) {
	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority.Rank() > insights[j].Priority.Rank()
	})
}
