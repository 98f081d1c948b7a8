// Package application contains the application layer for the portfolio
// analytics bounded context.
package application

import (
	"context"
	"log/slog"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/application/queries"
	"github.com/watchtower-ppm/watchtower/internal/portfolio/application/services"
	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// Service provides a facade over all portfolio analytics handlers.
type Service struct {
	// Query handlers
	getPortfolioMetricsHandler *queries.GetPortfolioMetricsHandler
	getManagerMetricsHandler   *queries.GetManagerMetricsHandler
	getProjectMetricsHandler   *queries.GetProjectMetricsHandler
	detectPatternsHandler      *queries.DetectPatternsHandler

	// Services
	insightGenerator *services.InsightGenerator
}

// NewService creates a new portfolio analytics service.
func NewService(thresholds domain.Thresholds, logger *slog.Logger) *Service {
	return &Service{
		getPortfolioMetricsHandler: queries.NewGetPortfolioMetricsHandler(thresholds),
		getManagerMetricsHandler:   queries.NewGetManagerMetricsHandler(thresholds),
		getProjectMetricsHandler:   queries.NewGetProjectMetricsHandler(thresholds),
		detectPatternsHandler:      queries.NewDetectPatternsHandler(thresholds),
		insightGenerator:           services.NewInsightGenerator(thresholds.Insights, logger),
	}
}

// GetPortfolioMetrics returns the portfolio roll-up and dataset summary.
func (s *Service) GetPortfolioMetrics(ctx context.Context, query queries.GetPortfolioMetricsQuery) (*queries.PortfolioResult, error) {
	return s.getPortfolioMetricsHandler.Handle(ctx, query)
}

// GetManagerMetrics returns per-manager metrics ranked by performance score.
func (s *Service) GetManagerMetrics(ctx context.Context, query queries.GetManagerMetricsQuery) ([]domain.ManagerMetrics, error) {
	return s.getManagerMetricsHandler.Handle(ctx, query)
}

// GetProjectMetrics returns per-project metrics with current and predicted
// RAG and top risks.
func (s *Service) GetProjectMetrics(ctx context.Context, query queries.GetProjectMetricsQuery) ([]domain.ProjectMetrics, error) {
	return s.getProjectMetricsHandler.Handle(ctx, query)
}

// DetectPatterns returns behavioural anti-patterns across managers.
func (s *Service) DetectPatterns(ctx context.Context, query queries.DetectPatternsQuery) ([]domain.BehaviouralPattern, error) {
	return s.detectPatternsHandler.Handle(ctx, query)
}

// GenerateInsights derives prioritized insights from a task set.
func (s *Service) GenerateInsights(ctx context.Context, tasks []domain.Task) (*services.GenerationResult, error) {
	portfolio, err := s.getPortfolioMetricsHandler.Handle(ctx, queries.GetPortfolioMetricsQuery{Tasks: tasks})
	if err != nil {
		return nil, err
	}
	return s.insightGenerator.GenerateInsights(ctx, portfolio.Metrics)
}
