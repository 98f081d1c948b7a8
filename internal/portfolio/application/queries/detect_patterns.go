package queries

import (
	"context"

	"github.com/watchtower-ppm/watchtower/internal/portfolio/domain"
)

// DetectPatternsQuery asks for behavioural anti-pattern detection over a
// task set.
type DetectPatternsQuery struct {
	Tasks []domain.Task
}

// DetectPatternsHandler handles pattern detection queries.
type DetectPatternsHandler struct {
	thresholds domain.Thresholds
	detector   *domain.PatternDetector
}

// NewDetectPatternsHandler creates a new pattern detection handler.
func NewDetectPatternsHandler(thresholds domain.Thresholds) *DetectPatternsHandler {
	return &DetectPatternsHandler{
		thresholds: thresholds,
		detector:   domain.NewPatternDetector(thresholds.Patterns),
	}
}

// Handle executes the pattern detection query. Manager metrics are derived
// first since three of the four rules evaluate over them.
func (h *DetectPatternsHandler) Handle(_ context.Context, query DetectPatternsQuery) ([]domain.BehaviouralPattern, error) {
	managers := domain.CalculateManagerMetrics(query.Tasks, h.thresholds)
	return h.detector.Detect(query.Tasks, managers), nil
}
