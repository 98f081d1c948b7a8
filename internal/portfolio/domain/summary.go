package domain

// DatasetSummary describes the shape of the normalized record set itself:
// counts by status, RAG, and project type, plus finance, hour, and
// reassessment totals. It carries no derived judgement; it exists so the
// overview can show what the metrics were computed from.
type DatasetSummary struct {
	TotalTasks      int `json:"total_tasks"`
	TotalProjects   int `json:"total_projects"`
	TotalManagers   int `json:"total_managers"`
	TotalPortfolios int `json:"total_portfolios"`

	TasksByStatus      map[TaskStatus]int  `json:"tasks_by_status"`
	TasksByRAG         map[RAGStatus]int   `json:"tasks_by_rag"`
	TasksByProjectType map[ProjectType]int `json:"tasks_by_project_type"`

	PlannedBudget float64 `json:"planned_budget"`
	TotalSpent    float64 `json:"total_spent"`

	ForecastHours float64 `json:"forecast_hours"`
	ActualHours   float64 `json:"actual_hours"`

	Reassessments       int `json:"reassessments"`
	IgnoredDependencies int `json:"ignored_dependencies"`
}

// SummarizeDataset tallies the record set. An empty input yields empty
// maps and zero totals.
func SummarizeDataset(tasks []Task) DatasetSummary {
	s := DatasetSummary{
		TotalTasks:         len(tasks),
		TasksByStatus:      make(map[TaskStatus]int),
		TasksByRAG:         make(map[RAGStatus]int),
		TasksByProjectType: make(map[ProjectType]int),
	}

	projects := make(map[string]struct{})
	managers := make(map[string]struct{})
	portfolios := make(map[string]struct{})

	for _, t := range tasks {
		projects[t.ProjectName()] = struct{}{}
		managers[t.Manager()] = struct{}{}
		if t.Portfolio != "" {
			portfolios[t.Portfolio] = struct{}{}
		}

		s.TasksByStatus[t.Status]++
		if t.RAG != "" {
			s.TasksByRAG[t.RAG]++
		}
		if t.ProjectType != "" {
			s.TasksByProjectType[t.ProjectType]++
		}

		s.PlannedBudget += t.PlannedBudget
		s.TotalSpent += t.TotalSpent
		s.ForecastHours += t.ForecastHours
		s.ActualHours += t.ActualHours
		s.Reassessments += t.ReassessmentCount
		if t.IgnoredDependencies {
			s.IgnoredDependencies++
		}
	}

	s.TotalProjects = len(projects)
	s.TotalManagers = len(managers)
	s.TotalPortfolios = len(portfolios)

	return s
}
