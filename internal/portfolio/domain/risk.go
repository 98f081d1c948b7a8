package domain

import "fmt"

// maxTopRisks caps the risk list per project.
const maxTopRisks = 5

// riskRule inspects a project's tasks and metrics and either contributes
// one formatted risk string or nothing. Rules run in fixed priority order
// and the list is cut at maxTopRisks, not re-ranked by magnitude.
type riskRule func(tasks []Task, m ProjectMetrics, th RiskThresholds) (string, bool)

var riskRules = []riskRule{
	func(_ []Task, m ProjectMetrics, th RiskThresholds) (string, bool) {
		if m.ForecastAccuracy >= th.ForecastAccuracy {
			return "", false
		}
		return fmt.Sprintf("Low forecast accuracy (%.1f%%): completed work rarely finishes by its planned end date", m.ForecastAccuracy), true
	},
	func(_ []Task, m ProjectMetrics, th RiskThresholds) (string, bool) {
		if m.GenericResourcePct <= th.GenericResourcePct {
			return "", false
		}
		return fmt.Sprintf("High generic resource usage (%.1f%%): a large share of tasks has no named owner", m.GenericResourcePct), true
	},
	func(_ []Task, m ProjectMetrics, th RiskThresholds) (string, bool) {
		if m.DurationVariance <= th.DurationVariance {
			return "", false
		}
		return fmt.Sprintf("Large duration variance (%.1f%%): tasks are running well past their planned durations", m.DurationVariance), true
	},
	func(_ []Task, m ProjectMetrics, th RiskThresholds) (string, bool) {
		if m.CriticalPathTaskPct <= th.CriticalPathPct {
			return "", false
		}
		return fmt.Sprintf("Oversized critical path (%.1f%% of tasks): too much of the project gates the end date", m.CriticalPathTaskPct), true
	},
	func(tasks []Task, _ ProjectMetrics, th RiskThresholds) (string, bool) {
		var volatile int
		for _, t := range tasks {
			if t.CriticalPathVolatility > th.VolatilityScore {
				volatile++
			}
		}
		if volatile == 0 {
			return "", false
		}
		return fmt.Sprintf("%d task(s) with unstable critical-path position (volatility > %.0f)", volatile, th.VolatilityScore), true
	},
	func(tasks []Task, _ ProjectMetrics, th RiskThresholds) (string, bool) {
		var overspent int
		for _, t := range tasks {
			if t.OverBudget(th.BudgetOverrunRatio) {
				overspent++
			}
		}
		if overspent == 0 {
			return "", false
		}
		return fmt.Sprintf("%d task(s) spending over %.0f%% of planned budget", overspent, th.BudgetOverrunRatio*100), true
	},
}

// IdentifyTopRisks returns up to maxTopRisks human-readable risk statements
// for a project, in fixed priority order.
func IdentifyTopRisks(tasks []Task, m ProjectMetrics, th RiskThresholds) []string {
	risks := make([]string, 0, maxTopRisks)
	for _, rule := range riskRules {
		if len(risks) == maxTopRisks {
			break
		}
		if risk, ok := rule(tasks, m, th); ok {
			risks = append(risks, risk)
		}
	}
	return risks
}
