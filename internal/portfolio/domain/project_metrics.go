package domain

// ProjectMetrics aggregates delivery behaviour for one project.
type ProjectMetrics struct {
	Project string `json:"project"`

	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletedPct   float64 `json:"completed_pct"`

	CriticalPathTasks   int     `json:"critical_path_tasks"`
	CriticalPathTaskPct float64 `json:"critical_path_task_pct"`

	ForecastAccuracy    float64 `json:"forecast_accuracy"`
	DurationVariance    float64 `json:"duration_variance"`
	GenericResourcePct  float64 `json:"generic_resource_pct"`
	ResourceUtilisation float64 `json:"resource_utilisation"`

	// CurrentRAG is the majority RAG vote across the project's tasks;
	// PredictedRAG is the rule-based classification of the metrics above.
	CurrentRAG   RAGStatus `json:"current_rag"`
	PredictedRAG RAGStatus `json:"predicted_rag"`

	TopRisks []string `json:"top_risks"`
}

// CalculateProjectGroup computes the metrics for one project's tasks.
func CalculateProjectGroup(project string, tasks []Task, thresholds Thresholds) ProjectMetrics {
	m := ProjectMetrics{
		Project:             project,
		TotalTasks:          len(tasks),
		ForecastAccuracy:    ForecastAccuracy(tasks),
		DurationVariance:    DurationVariance(tasks),
		GenericResourcePct:  GenericResourcePercentage(tasks, thresholds.Markers()),
		ResourceUtilisation: MeanResourceUtilisation(tasks),
	}

	for _, t := range tasks {
		if t.IsCompleted() {
			m.CompletedTasks++
		}
		if t.OnCriticalPath {
			m.CriticalPathTasks++
		}
	}
	if m.TotalTasks > 0 {
		m.CompletedPct = float64(m.CompletedTasks) / float64(m.TotalTasks) * 100
		m.CriticalPathTaskPct = float64(m.CriticalPathTasks) / float64(m.TotalTasks) * 100
	}

	m.CurrentRAG = majorityRAG(tasks)
	m.PredictedRAG = PredictRAGStatus(m, thresholds.RAG)
	m.TopRisks = IdentifyTopRisks(tasks, m, thresholds.Risk)

	return m
}

// CalculateProjectMetrics partitions tasks by project name (empty names
// fall into the Unnamed Project bucket) and computes each group's metrics.
// Groups keep the order in which projects first appear in the input.
func CalculateProjectMetrics(tasks []Task, thresholds Thresholds) []ProjectMetrics {
	groups, order := partitionTasks(tasks, Task.ProjectName)

	metrics := make([]ProjectMetrics, 0, len(order))
	for _, project := range order {
		metrics = append(metrics, CalculateProjectGroup(project, groups[project], thresholds))
	}
	return metrics
}

// majorityRAG returns the RAG value held by the most tasks. Ties resolve in
// Red, Amber, Green order so the most pessimistic status wins. An empty
// group reads Green: no observed signal is treated as no observed risk.
func majorityRAG(tasks []Task) RAGStatus {
	counts := make(map[RAGStatus]int, len(ragOrder))
	for _, t := range tasks {
		counts[t.RAG]++
	}

	winner := RAGGreen
	best := 0
	for _, status := range ragOrder {
		if counts[status] > best {
			winner = status
			best = counts[status]
		}
	}
	return winner
}
