package queries

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// GetProjectMetricsQuery asks for per-project metrics over a task set.
type GetProjectMetricsQuery struct {
	Tasks []domain.Task
}

// GetProjectMetricsHandler handles project metrics queries. Project groups
// are independent task subsets, so their metrics are computed concurrently;
// results keep the order in which projects first appear in the input.
type GetProjectMetricsHandler struct {
	thresholds domain.Thresholds
}

// NewGetProjectMetricsHandler creates a new project metrics handler.
func NewGetProjectMetricsHandler(thresholds domain.Thresholds) *GetProjectMetricsHandler {
	return &GetProjectMetricsHandler{thresholds: thresholds}
}

// Handle executes the project metrics query.
func (h *GetProjectMetricsHandler) Handle(ctx context.Context, query GetProjectMetricsQuery) ([]domain.ProjectMetrics, error) {
	groups := make(map[string][]domain.Task)
	order := make([]string, 0)
	for _, t := range query.Tasks {
		name := t.ProjectName()
		if _, seen := groups[name]; !seen {
			order = append(order, name)
		}
		groups[name] = append(groups[name], t)
	}

	metrics := make([]domain.ProjectMetrics, len(order))
	g, _ := errgroup.WithContext(ctx)
	for i, name := range order {
		i, name := i, name
		g.Go(func() error {
			metrics[i] = domain.CalculateProjectGroup(name, groups[name], h.thresholds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return metrics, nil
}
