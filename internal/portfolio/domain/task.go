// Package domain contains the domain model for the portfolio analytics
// bounded context: the normalized task record and the pure functions that
// derive manager, project, and portfolio metrics from it.
package domain

import (
	"time"
)

// TaskStatus represents the delivery status of a task.
type TaskStatus string

const (
	StatusCompleted  TaskStatus = "Completed"
	StatusInProgress TaskStatus = "In Progress"
	StatusNotStarted TaskStatus = "Not Started"
)

// RAGStatus is the Red/Amber/Green traffic-light health classification.
type RAGStatus string

const (
	RAGRed   RAGStatus = "Red"
	RAGAmber RAGStatus = "Amber"
	RAGGreen RAGStatus = "Green"
)

// ragOrder fixes the tie-break order for majority votes: Red wins ties.
var ragOrder = []RAGStatus{RAGRed, RAGAmber, RAGGreen}

// ProjectType classifies the kind of project a task belongs to.
type ProjectType string

const (
	ProjectTypeInfrastructure ProjectType = "Infrastructure"
	ProjectTypeSoftware       ProjectType = "Software"
	ProjectTypeMigration      ProjectType = "Migration"
	ProjectTypeCompliance     ProjectType = "Compliance"
)

// Group labels for tasks with empty ownership fields.
const (
	UnassignedManager = "Unassigned"
	UnnamedProject    = "Unnamed Project"
)

// Task is the normalized, immutable task record every calculation consumes.
// It arrives fully type-coerced from the ingestion pipeline: dates are
// parsed or nil (nil means unknown, not zero), numerics are parsed or 0,
// and enums are already defaulted. The engine never mutates a Task.
type Task struct {
	// Identity
	Portfolio   string      `json:"portfolio"`
	Project     string      `json:"project"`
	WorkPackage string      `json:"work_package"`
	TaskID      string      `json:"task_id"`
	TaskName    string      `json:"task_name"`
	ProjectType ProjectType `json:"project_type"`

	// Ownership
	FunctionalManager string `json:"functional_manager"`
	AssignedResource  string `json:"assigned_resource"`

	// Schedule (durations are in days)
	PlannedStart    *time.Time `json:"planned_start"`
	PlannedEnd      *time.Time `json:"planned_end"`
	ActualStart     *time.Time `json:"actual_start"`
	ActualEnd       *time.Time `json:"actual_end"`
	BaselineStart   *time.Time `json:"baseline_start"`
	BaselineEnd     *time.Time `json:"baseline_end"`
	PlannedDuration float64    `json:"planned_duration"`
	ActualDuration  float64    `json:"actual_duration"`

	// Finance (same currency unit, no conversion)
	PlannedBudget float64 `json:"planned_budget"`
	TotalSpent    float64 `json:"total_spent"`

	// Status
	Status TaskStatus `json:"status"`

	// Health signals
	RAG                    RAGStatus `json:"rag_status"`
	ResourceUtilisation    float64   `json:"resource_utilisation"`
	OnCriticalPath         bool      `json:"critical_path"`
	CriticalPathVolatility float64   `json:"critical_path_volatility"`
	IgnoredDependencies    bool      `json:"ignored_dependencies"`
	ReassessmentCount      int       `json:"reassessment_count"`

	// Hour tracking
	ForecastHours             float64 `json:"forecast_hours"`
	ActualHours               float64 `json:"actual_hours"`
	EstimateToCompleteHours   float64 `json:"estimate_to_complete_hours"`
	EstimateAtCompletionHours float64 `json:"estimate_at_completion_hours"`
}

// IsCompleted returns true if the task has finished.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Manager returns the functional manager, bucketing empty values under
// the Unassigned group.
func (t Task) Manager() string {
	if t.FunctionalManager == "" {
		return UnassignedManager
	}
	return t.FunctionalManager
}

// ProjectName returns the project, bucketing empty values under the
// Unnamed Project group.
func (t Task) ProjectName() string {
	if t.Project == "" {
		return UnnamedProject
	}
	return t.Project
}

// FinishedOnTime reports whether a completed task finished on or before
// its planned end. The second return is false when the comparison cannot
// be made (task not completed, or either date unknown).
func (t Task) FinishedOnTime() (bool, bool) {
	if !t.IsCompleted() || t.ActualEnd == nil || t.PlannedEnd == nil {
		return false, false
	}
	return !t.ActualEnd.After(*t.PlannedEnd), true
}

// StartedOnTime reports whether a completed task started on or before its
// planned start, with the same comparability semantics as FinishedOnTime.
func (t Task) StartedOnTime() (bool, bool) {
	if !t.IsCompleted() || t.ActualStart == nil || t.PlannedStart == nil {
		return false, false
	}
	return !t.ActualStart.After(*t.PlannedStart), true
}

// OverBudget reports whether spend exceeds the given fraction of the
// planned budget (e.g. 1.10 for 110%). Tasks without a planned budget are
// never over budget.
func (t Task) OverBudget(ratio float64) bool {
	if t.PlannedBudget <= 0 {
		return false
	}
	return t.TotalSpent > t.PlannedBudget*ratio
}
