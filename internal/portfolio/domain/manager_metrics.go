package domain

import (
	"math"
	"sort"
)

// ManagerMetrics aggregates delivery behaviour for one functional manager.
type ManagerMetrics struct {
	Manager string `json:"manager"`

	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	OnTimeStarts   int `json:"on_time_starts"`
	OnTimeEnds     int `json:"on_time_ends"`

	ForecastAccuracy    float64 `json:"forecast_accuracy"`
	DurationVariance    float64 `json:"duration_variance"`
	GenericResourcePct  float64 `json:"generic_resource_pct"`
	ResourceUtilisation float64 `json:"resource_utilisation"`
	CriticalPathHealth  float64 `json:"critical_path_health"`

	RedTasks   int `json:"red_tasks"`
	AmberTasks int `json:"amber_tasks"`
	GreenTasks int `json:"green_tasks"`

	PerformanceScore int `json:"performance_score"`
}

// Performance score weights. Duration variance is penalized symmetrically
// (finishing far ahead of plan costs points like finishing late does) while
// forecast accuracy rewards only on-time-or-early completion. That
// asymmetry is established business logic; keep it when touching the
// formula.
const (
	weightForecastAccuracy   = 0.35
	weightDurationVariance   = 0.25
	weightGenericResource    = 0.20
	weightCriticalPathHealth = 0.10
	weightRAGScore           = 0.10
)

// CalculatePerformanceScore computes the 0-100 weighted composite from the
// already-aggregated metric fields and stores it on the receiver.
func (m *ManagerMetrics) CalculatePerformanceScore() {
	var ragScore float64
	if m.TotalTasks > 0 {
		greenPct := float64(m.GreenTasks) / float64(m.TotalTasks) * 100
		amberPct := float64(m.AmberTasks) / float64(m.TotalTasks) * 100
		ragScore = greenPct + 0.5*amberPct
	}

	score := weightForecastAccuracy*m.ForecastAccuracy +
		weightDurationVariance*math.Max(0, 100-math.Abs(m.DurationVariance)) +
		weightGenericResource*math.Max(0, 100-m.GenericResourcePct) +
		weightCriticalPathHealth*m.CriticalPathHealth +
		weightRAGScore*ragScore

	m.PerformanceScore = int(math.Round(score))
}

// CalculateManagerMetrics partitions tasks by functional manager (empty
// managers fall into the Unassigned bucket), computes each group's metrics,
// and returns the groups sorted by performance score descending. The sort
// is stable so ties keep the order in which managers first appear in the
// input.
func CalculateManagerMetrics(tasks []Task, thresholds Thresholds) []ManagerMetrics {
	groups, order := partitionTasks(tasks, Task.Manager)

	metrics := make([]ManagerMetrics, 0, len(order))
	for _, manager := range order {
		group := groups[manager]

		m := ManagerMetrics{
			Manager:             manager,
			TotalTasks:          len(group),
			ForecastAccuracy:    ForecastAccuracy(group),
			DurationVariance:    DurationVariance(group),
			GenericResourcePct:  GenericResourcePercentage(group, thresholds.Markers()),
			ResourceUtilisation: MeanResourceUtilisation(group),
			CriticalPathHealth:  CriticalPathHealth(group),
		}

		for _, t := range group {
			if t.IsCompleted() {
				m.CompletedTasks++
			}
			if ok, known := t.StartedOnTime(); known && ok {
				m.OnTimeStarts++
			}
			if ok, known := t.FinishedOnTime(); known && ok {
				m.OnTimeEnds++
			}
			switch t.RAG {
			case RAGRed:
				m.RedTasks++
			case RAGAmber:
				m.AmberTasks++
			case RAGGreen:
				m.GreenTasks++
			}
		}

		m.CalculatePerformanceScore()
		metrics = append(metrics, m)
	}

	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].PerformanceScore > metrics[j].PerformanceScore
	})

	return metrics
}

// partitionTasks groups tasks by the given key, remembering the order in
// which keys were first seen. Every task lands in exactly one group.
func partitionTasks(tasks []Task, key func(Task) string) (map[string][]Task, []string) {
	groups := make(map[string][]Task)
	order := make([]string, 0)
	for _, t := range tasks {
		k := key(t)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], t)
	}
	return groups, order
}
