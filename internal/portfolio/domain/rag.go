package domain

// ragRule pairs a predicted status with the condition that selects it. The
// predictor walks the rules top to bottom and the first match wins, so the
// priority order stays visible and each rule is testable on its own.
type ragRule struct {
	status  RAGStatus
	matches func(m ProjectMetrics, th RAGThresholds) bool
}

var ragRules = []ragRule{
	{
		status: RAGRed,
		matches: func(m ProjectMetrics, th RAGThresholds) bool {
			return m.ForecastAccuracy < th.RedForecastAccuracy ||
				m.GenericResourcePct > th.RedGenericResourcePct ||
				m.DurationVariance > th.RedDurationVariance ||
				m.CriticalPathTaskPct > th.RedCriticalPathPct
		},
	},
	{
		status: RAGAmber,
		matches: func(m ProjectMetrics, th RAGThresholds) bool {
			return m.ForecastAccuracy < th.AmberForecastAccuracy ||
				m.GenericResourcePct > th.AmberGenericResourcePct ||
				m.DurationVariance > th.AmberDurationVariance ||
				m.CriticalPathTaskPct > th.AmberCriticalPathPct
		},
	},
}

// PredictRAGStatus classifies a project's aggregated metrics into a
// predicted RAG status. Any single breached condition escalates the whole
// project; there is no weighting across conditions (worst signal wins).
// Metrics that match no rule predict Green.
func PredictRAGStatus(m ProjectMetrics, th RAGThresholds) RAGStatus {
	for _, rule := range ragRules {
		if rule.matches(m, th) {
			return rule.status
		}
	}
	return RAGGreen
}
