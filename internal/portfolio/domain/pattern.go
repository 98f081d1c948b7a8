package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// PatternType names one of the four behavioural anti-patterns the detector
// recognizes.
type PatternType string

const (
	PatternChronicOptimism         PatternType = "chronic_optimism"
	PatternGenericResourceOveruse  PatternType = "generic_resource_overuse"
	PatternCriticalPathInstability PatternType = "critical_path_instability"
	PatternResourceHoarding        PatternType = "resource_hoarding"
)

// PatternSeverity tiers a detected pattern.
type PatternSeverity string

const (
	PatternSeverityHigh   PatternSeverity = "high"
	PatternSeverityMedium PatternSeverity = "medium"
	PatternSeverityLow    PatternSeverity = "low"
)

// rank orders severities for sorting; higher is worse.
func (s PatternSeverity) rank() int {
	switch s {
	case PatternSeverityHigh:
		return 3
	case PatternSeverityMedium:
		return 2
	case PatternSeverityLow:
		return 1
	default:
		return 0
	}
}

// BehaviouralPattern is one detected anti-pattern with the managers it
// implicates.
type BehaviouralPattern struct {
	ID               uuid.UUID       `json:"id"`
	Type             PatternType     `json:"type"`
	Severity         PatternSeverity `json:"severity"`
	AffectedManagers []string        `json:"affected_managers"`
	Description      string          `json:"description"`
	Recommendation   string          `json:"recommendation"`
	DetectedAt       time.Time       `json:"detected_at"`
}

// PatternDetector evaluates the four behavioural rules over the full
// manager-metrics list and task set. It is stateless; thresholds are fixed
// at construction.
type PatternDetector struct {
	thresholds PatternThresholds
}

// NewPatternDetector creates a detector with the given thresholds.
func NewPatternDetector(thresholds PatternThresholds) *PatternDetector {
	return &PatternDetector{thresholds: thresholds}
}

// Detect runs all four rules. Each rule emits zero or one pattern; the
// result is sorted by severity descending with stable ties, so equal
// severities keep the rule evaluation order (optimism, generic overuse,
// instability, hoarding).
func (d *PatternDetector) Detect(tasks []Task, managers []ManagerMetrics) []BehaviouralPattern {
	patterns := make([]BehaviouralPattern, 0, 4)

	if p, ok := d.detectChronicOptimism(managers); ok {
		patterns = append(patterns, p)
	}
	if p, ok := d.detectGenericResourceOveruse(managers); ok {
		patterns = append(patterns, p)
	}
	if p, ok := d.detectCriticalPathInstability(tasks); ok {
		patterns = append(patterns, p)
	}
	if p, ok := d.detectResourceHoarding(managers); ok {
		patterns = append(patterns, p)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Severity.rank() > patterns[j].Severity.rank()
	})

	return patterns
}

// detectChronicOptimism flags managers whose completed work both overruns
// its planned durations and misses its planned end dates.
func (d *PatternDetector) detectChronicOptimism(managers []ManagerMetrics) (BehaviouralPattern, bool) {
	var affected []string
	for _, m := range managers {
		if m.DurationVariance > d.thresholds.OptimismDurationVariance &&
			m.ForecastAccuracy < d.thresholds.OptimismForecastAccuracy {
			affected = append(affected, m.Manager)
		}
	}
	if len(affected) == 0 {
		return BehaviouralPattern{}, false
	}

	severity := PatternSeverityMedium
	if managerShare(len(affected), len(managers)) > d.thresholds.OptimismHighSharePct {
		severity = PatternSeverityHigh
	}

	return newPattern(
		PatternChronicOptimism,
		severity,
		affected,
		fmt.Sprintf("%d manager(s) consistently plan optimistic durations: tasks overrun plans by more than %.0f%% while fewer than %.0f%% finish on time.",
			len(affected), d.thresholds.OptimismDurationVariance, d.thresholds.OptimismForecastAccuracy),
		"Review estimation practice with these managers and baseline new plans against their historical overrun.",
	), true
}

// detectGenericResourceOveruse flags managers leaving most of their tasks
// on placeholder assignees.
func (d *PatternDetector) detectGenericResourceOveruse(managers []ManagerMetrics) (BehaviouralPattern, bool) {
	var affected []string
	for _, m := range managers {
		if m.GenericResourcePct > d.thresholds.GenericOverusePct {
			affected = append(affected, m.Manager)
		}
	}
	if len(affected) == 0 {
		return BehaviouralPattern{}, false
	}

	severity := PatternSeverityMedium
	if managerShare(len(affected), len(managers)) > d.thresholds.GenericOveruseHighPct {
		severity = PatternSeverityHigh
	}

	return newPattern(
		PatternGenericResourceOveruse,
		severity,
		affected,
		fmt.Sprintf("%d manager(s) keep more than %.0f%% of their tasks on generic placeholder resources.",
			len(affected), d.thresholds.GenericOverusePct),
		"Resolve placeholder assignments to named individuals before the work is due to start.",
	), true
}

// detectCriticalPathInstability evaluates over tasks rather than managers:
// it fires when too large a fraction of all tasks has a volatile
// critical-path position. The affected list is the distinct set of
// managers owning any such task.
func (d *PatternDetector) detectCriticalPathInstability(tasks []Task) (BehaviouralPattern, bool) {
	if len(tasks) == 0 {
		return BehaviouralPattern{}, false
	}

	var volatile int
	seen := make(map[string]struct{})
	var affected []string
	for _, t := range tasks {
		if t.CriticalPathVolatility <= d.thresholds.InstabilityVolatility {
			continue
		}
		volatile++
		manager := t.Manager()
		if _, dup := seen[manager]; !dup {
			seen[manager] = struct{}{}
			affected = append(affected, manager)
		}
	}

	volatilePct := float64(volatile) / float64(len(tasks)) * 100
	if volatilePct <= d.thresholds.InstabilityTriggerPct {
		return BehaviouralPattern{}, false
	}

	severity := PatternSeverityMedium
	if volatilePct > d.thresholds.InstabilityHighSharePct {
		severity = PatternSeverityHigh
	}

	return newPattern(
		PatternCriticalPathInstability,
		severity,
		affected,
		fmt.Sprintf("%.1f%% of tasks have an unstable critical-path position (volatility above %.0f).",
			volatilePct, d.thresholds.InstabilityVolatility),
		"Stabilize sequencing on the critical path; frequent resequencing hides the real end date.",
	), true
}

// detectResourceHoarding flags managers holding a meaningful book of work
// at low average utilisation.
func (d *PatternDetector) detectResourceHoarding(managers []ManagerMetrics) (BehaviouralPattern, bool) {
	var affected []string
	for _, m := range managers {
		if m.ResourceUtilisation < d.thresholds.HoardingUtilisation &&
			m.TotalTasks > d.thresholds.HoardingMinTasks {
			affected = append(affected, m.Manager)
		}
	}
	if len(affected) == 0 {
		return BehaviouralPattern{}, false
	}

	severity := PatternSeverityLow
	if managerShare(len(affected), len(managers)) > d.thresholds.HoardingHighSharePct {
		severity = PatternSeverityHigh
	}

	return newPattern(
		PatternResourceHoarding,
		severity,
		affected,
		fmt.Sprintf("%d manager(s) hold more than %d tasks at under %.0f%% average utilisation.",
			len(affected), d.thresholds.HoardingMinTasks, d.thresholds.HoardingUtilisation),
		"Rebalance under-utilised capacity to teams with over-allocated resources.",
	), true
}

func newPattern(pt PatternType, severity PatternSeverity, affected []string, description, recommendation string) BehaviouralPattern {
	return BehaviouralPattern{
		ID:               uuid.New(),
		Type:             pt,
		Severity:         severity,
		AffectedManagers: affected,
		Description:      description,
		Recommendation:   recommendation,
		DetectedAt:       time.Now(),
	}
}

// managerShare returns affected managers as a percentage of all managers.
func managerShare(affected, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(affected) / float64(total) * 100
}
