package domain

// PortfolioMetrics rolls the entire task set up into portfolio-wide totals
// and embeds the full ranked manager list. Exactly one is produced per
// invocation; it is rebuilt from scratch on every input change.
type PortfolioMetrics struct {
	TotalProjects  int     `json:"total_projects"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletedPct   float64 `json:"completed_pct"`

	ForecastAccuracy    float64 `json:"forecast_accuracy"`
	DurationVariance    float64 `json:"duration_variance"`
	GenericResourcePct  float64 `json:"generic_resource_pct"`
	ResourceUtilisation float64 `json:"resource_utilisation"`
	CriticalPathHealth  float64 `json:"critical_path_health"`

	RAGDistribution map[RAGStatus]int `json:"rag_distribution"`

	Managers []ManagerMetrics `json:"managers"`
}

// RAGShare returns the given status's share of all RAG-tagged tasks as a
// percentage. Returns 0 when no task carries a RAG value.
func (p PortfolioMetrics) RAGShare(status RAGStatus) float64 {
	var total int
	for _, s := range ragOrder {
		total += p.RAGDistribution[s]
	}
	if total == 0 {
		return 0
	}
	return float64(p.RAGDistribution[status]) / float64(total) * 100
}

// CalculatePortfolioMetrics computes the portfolio roll-up for the full
// task set. An empty input yields a zero-valued result with an empty RAG
// distribution and no managers; it never fails.
func CalculatePortfolioMetrics(tasks []Task, thresholds Thresholds) PortfolioMetrics {
	p := PortfolioMetrics{
		TotalTasks:          len(tasks),
		ForecastAccuracy:    ForecastAccuracy(tasks),
		DurationVariance:    DurationVariance(tasks),
		GenericResourcePct:  GenericResourcePercentage(tasks, thresholds.Markers()),
		ResourceUtilisation: MeanResourceUtilisation(tasks),
		RAGDistribution:     make(map[RAGStatus]int),
		Managers:            CalculateManagerMetrics(tasks, thresholds),
	}

	if len(tasks) == 0 {
		// Empty portfolios report 0 across the board, including
		// critical-path health, which would otherwise read 100.
		return p
	}
	p.CriticalPathHealth = CriticalPathHealth(tasks)

	projects := make(map[string]struct{})
	for _, t := range tasks {
		projects[t.ProjectName()] = struct{}{}
		if t.IsCompleted() {
			p.CompletedTasks++
		}
		switch t.RAG {
		case RAGRed, RAGAmber, RAGGreen:
			p.RAGDistribution[t.RAG]++
		}
	}
	p.TotalProjects = len(projects)
	p.CompletedPct = float64(p.CompletedTasks) / float64(p.TotalTasks) * 100

	return p
}
