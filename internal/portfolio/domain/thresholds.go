package domain

import "strings"

// DefaultGenericResourceMarkers are the lowercase substrings that flag an
// assignee as a placeholder rather than a named individual.
var DefaultGenericResourceMarkers = []string{
	"resource_",
	"generic",
	"tbd",
	"unassigned",
	"placeholder",
	"to be determined",
}

// Thresholds holds every cut-point the rule engines evaluate, so the rules
// stay data-driven and independently testable. A partial YAML file can be
// unmarshalled over DefaultThresholds() to override individual numbers.
type Thresholds struct {
	GenericResourceMarkers []string          `yaml:"generic_resource_markers"`
	RAG                    RAGThresholds     `yaml:"rag"`
	Risk                   RiskThresholds    `yaml:"risk"`
	Patterns               PatternThresholds `yaml:"patterns"`
	Insights               InsightThresholds `yaml:"insights"`
}

// RAGThresholds parameterize the project RAG predictor. Any single breach
// of a Red condition escalates the whole project; Amber works the same way.
type RAGThresholds struct {
	RedForecastAccuracy   float64 `yaml:"red_forecast_accuracy"`
	RedGenericResourcePct float64 `yaml:"red_generic_resource_pct"`
	RedDurationVariance   float64 `yaml:"red_duration_variance"`
	RedCriticalPathPct    float64 `yaml:"red_critical_path_pct"`

	AmberForecastAccuracy   float64 `yaml:"amber_forecast_accuracy"`
	AmberGenericResourcePct float64 `yaml:"amber_generic_resource_pct"`
	AmberDurationVariance   float64 `yaml:"amber_duration_variance"`
	AmberCriticalPathPct    float64 `yaml:"amber_critical_path_pct"`
}

// RiskThresholds parameterize the fixed-priority risk identifier.
type RiskThresholds struct {
	ForecastAccuracy   float64 `yaml:"forecast_accuracy"`
	GenericResourcePct float64 `yaml:"generic_resource_pct"`
	DurationVariance   float64 `yaml:"duration_variance"`
	CriticalPathPct    float64 `yaml:"critical_path_pct"`
	VolatilityScore    float64 `yaml:"volatility_score"`
	BudgetOverrunRatio float64 `yaml:"budget_overrun_ratio"`
}

// PatternThresholds parameterize the behavioural pattern detector.
type PatternThresholds struct {
	OptimismDurationVariance float64 `yaml:"optimism_duration_variance"`
	OptimismForecastAccuracy float64 `yaml:"optimism_forecast_accuracy"`
	OptimismHighSharePct     float64 `yaml:"optimism_high_share_pct"`

	GenericOverusePct     float64 `yaml:"generic_overuse_pct"`
	GenericOveruseHighPct float64 `yaml:"generic_overuse_high_pct"`

	InstabilityVolatility   float64 `yaml:"instability_volatility"`
	InstabilityTriggerPct   float64 `yaml:"instability_trigger_pct"`
	InstabilityHighSharePct float64 `yaml:"instability_high_share_pct"`

	HoardingUtilisation  float64 `yaml:"hoarding_utilisation"`
	HoardingMinTasks     int     `yaml:"hoarding_min_tasks"`
	HoardingHighSharePct float64 `yaml:"hoarding_high_share_pct"`
}

// InsightThresholds parameterize the insight generator.
type InsightThresholds struct {
	ForecastAccuracy     float64 `yaml:"forecast_accuracy"`
	GenericResourcePct   float64 `yaml:"generic_resource_pct"`
	RedSharePct          float64 `yaml:"red_share_pct"`
	PoorPerformanceScore int     `yaml:"poor_performance_score"`
	TopPerformanceScore  int     `yaml:"top_performance_score"`
}

// DefaultThresholds returns the standard rule configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		GenericResourceMarkers: append([]string(nil), DefaultGenericResourceMarkers...),
		RAG: RAGThresholds{
			RedForecastAccuracy:   50,
			RedGenericResourcePct: 80,
			RedDurationVariance:   25,
			RedCriticalPathPct:    40,

			AmberForecastAccuracy:   70,
			AmberGenericResourcePct: 50,
			AmberDurationVariance:   15,
			AmberCriticalPathPct:    30,
		},
		Risk: RiskThresholds{
			ForecastAccuracy:   60,
			GenericResourcePct: 60,
			DurationVariance:   20,
			CriticalPathPct:    35,
			VolatilityScore:    5,
			BudgetOverrunRatio: 1.10,
		},
		Patterns: PatternThresholds{
			OptimismDurationVariance: 15,
			OptimismForecastAccuracy: 60,
			OptimismHighSharePct:     50,

			GenericOverusePct:     70,
			GenericOveruseHighPct: 30,

			InstabilityVolatility:   5,
			InstabilityTriggerPct:   20,
			InstabilityHighSharePct: 30,

			HoardingUtilisation:  60,
			HoardingMinTasks:     5,
			HoardingHighSharePct: 30,
		},
		Insights: InsightThresholds{
			ForecastAccuracy:     60,
			GenericResourcePct:   50,
			RedSharePct:          30,
			PoorPerformanceScore: 40,
			TopPerformanceScore:  80,
		},
	}
}

// Markers returns the configured generic-resource markers, falling back to
// the defaults when none are configured.
func (t Thresholds) Markers() []string {
	if len(t.GenericResourceMarkers) == 0 {
		return DefaultGenericResourceMarkers
	}
	return t.GenericResourceMarkers
}

// IsGenericResource reports whether an assignee string matches any of the
// markers, case-insensitively.
func IsGenericResource(assignee string, markers []string) bool {
	folded := strings.ToLower(strings.TrimSpace(assignee))
	for _, m := range markers {
		if strings.Contains(folded, m) {
			return true
		}
	}
	return false
}
