package queries

import (
	"context"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// GetManagerMetricsQuery asks for per-manager metrics over a task set.
type GetManagerMetricsQuery struct {
	Tasks []domain.Task
}

// GetManagerMetricsHandler handles manager metrics queries.
type GetManagerMetricsHandler struct {
	thresholds domain.Thresholds
}

// NewGetManagerMetricsHandler creates a new manager metrics handler.
func NewGetManagerMetricsHandler(thresholds domain.Thresholds) *GetManagerMetricsHandler {
	return &GetManagerMetricsHandler{thresholds: thresholds}
}

// Handle executes the manager metrics query. The result is ranked by
// performance score descending.
func (h *GetManagerMetricsHandler) Handle(_ context.Context, query GetManagerMetricsQuery) ([]domain.ManagerMetrics, error) {
	return domain.CalculateManagerMetrics(query.Tasks, h.thresholds), nil
}
