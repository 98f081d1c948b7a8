package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsightType tags the tone of an insight.
type InsightType string

const (
	InsightTypeDanger  InsightType = "danger"
	InsightTypeWarning InsightType = "warning"
	InsightTypeSuccess InsightType = "success"
)

// InsightPriority tiers how urgently an insight deserves attention.
type InsightPriority string

const (
	InsightPriorityHigh   InsightPriority = "high"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityLow    InsightPriority = "low"
)

// Rank orders priorities for sorting; higher is more urgent.
func (p InsightPriority) Rank() int {
	switch p {
	case InsightPriorityHigh:
		return 3
	case InsightPriorityMedium:
		return 2
	case InsightPriorityLow:
		return 1
	default:
		return 0
	}
}

// Insight is one prioritized, human-readable observation derived from
// portfolio or manager metrics. Insights are rebuilt on every invocation
// and never persisted.
type Insight struct {
	ID             uuid.UUID       `json:"id"`
	Type           InsightType     `json:"type"`
	Priority       InsightPriority `json:"priority"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Recommendation string          `json:"recommendation"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// NewInsight creates an insight record.
func NewInsight(insightType InsightType, priority InsightPriority, title, description, recommendation string) *Insight {
	return &Insight{
		ID:             uuid.New(),
		Type:           insightType,
		Priority:       priority,
		Title:          title,
		Description:    description,
		Recommendation: recommendation,
		GeneratedAt:    time.Now(),
	}
}
