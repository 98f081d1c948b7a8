// Package queries contains query handlers for the portfolio analytics
// bounded context. Handlers are pure with respect to their inputs: every
// call recomputes the derived structures from the supplied task set.
package queries

import (
	"context"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// GetPortfolioMetricsQuery asks for the portfolio roll-up over a task set.
type GetPortfolioMetricsQuery struct {
	Tasks []domain.Task
}

// PortfolioResult pairs the roll-up with a summary of the record set it
// was derived from.
type PortfolioResult struct {
	Metrics domain.PortfolioMetrics
	Summary domain.DatasetSummary
}

// GetPortfolioMetricsHandler handles portfolio roll-up queries.
type GetPortfolioMetricsHandler struct {
	thresholds domain.Thresholds
}

// NewGetPortfolioMetricsHandler creates a new portfolio metrics handler.
func NewGetPortfolioMetricsHandler(thresholds domain.Thresholds) *GetPortfolioMetricsHandler {
	return &GetPortfolioMetricsHandler{thresholds: thresholds}
}

// Handle executes the portfolio metrics query.
func (h *GetPortfolioMetricsHandler) Handle(_ context.Context, query GetPortfolioMetricsQuery) (*PortfolioResult, error) {
	return &PortfolioResult{
		Metrics: domain.CalculatePortfolioMetrics(query.Tasks, h.thresholds),
		Summary: domain.SummarizeDataset(query.Tasks),
	}, nil
}
