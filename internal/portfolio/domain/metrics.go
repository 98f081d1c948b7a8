package domain

import "math"

// ForecastAccuracy returns the percentage of completed tasks that finished
// on or before their planned end date. Tasks missing either date are
// excluded from both numerator and denominator. Returns 0 when no completed
// task has both dates.
func ForecastAccuracy(tasks []Task) float64 {
	var onTime, comparable int
	for _, t := range tasks {
		ok, known := t.FinishedOnTime()
		if !known {
			continue
		}
		comparable++
		if ok {
			onTime++
		}
	}
	if comparable == 0 {
		return 0
	}
	return float64(onTime) / float64(comparable) * 100
}

// DurationVariance returns the mean percentage deviation of actual from
// planned duration over completed tasks. Positive means overrun. Tasks with
// zero or missing durations are excluded entirely. Returns 0 when no task
// qualifies.
func DurationVariance(tasks []Task) float64 {
	var sum float64
	var count int
	for _, t := range tasks {
		if !t.IsCompleted() || t.PlannedDuration <= 0 || t.ActualDuration <= 0 {
			continue
		}
		sum += (t.ActualDuration - t.PlannedDuration) / t.PlannedDuration * 100
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// GenericResourcePercentage returns the share of tasks assigned to a
// placeholder resource, matched case-insensitively against the markers.
func GenericResourcePercentage(tasks []Task, markers []string) float64 {
	if len(tasks) == 0 {
		return 0
	}
	var generic int
	for _, t := range tasks {
		if IsGenericResource(t.AssignedResource, markers) {
			generic++
		}
	}
	return float64(generic) / float64(len(tasks)) * 100
}

// MeanResourceUtilisation returns the mean per-task utilisation over tasks
// that report one. A utilisation of 0 means "not reported" and is excluded,
// not treated as an idle resource. Returns 0 when nothing is reported.
func MeanResourceUtilisation(tasks []Task) float64 {
	var sum float64
	var count int
	for _, t := range tasks {
		if t.ResourceUtilisation <= 0 {
			continue
		}
		sum += t.ResourceUtilisation
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// criticalPathIdealSharePct is the critical-path share of a task set that
// the concentration component treats as healthy.
const criticalPathIdealSharePct = 20.0

// CriticalPathHealth scores the critical path from 0 (distressed) to 100
// (healthy). No critical-path tasks means no critical-path risk observed,
// which scores 100. Otherwise the score is the sum of a volatility
// component (average volatility of 10+ drives it to 0) and a concentration
// component (2 points lost per percentage point the critical-path share
// sits away from the ideal 20%).
func CriticalPathHealth(tasks []Task) float64 {
	var critical int
	var volatilitySum float64
	for _, t := range tasks {
		if !t.OnCriticalPath {
			continue
		}
		critical++
		volatilitySum += t.CriticalPathVolatility
	}
	if critical == 0 {
		return 100
	}

	avgVolatility := volatilitySum / float64(critical)
	sharePct := float64(critical) / float64(len(tasks)) * 100

	volatilityComponent := clamp((1-avgVolatility/10)*50, 0, 50)
	concentrationComponent := clamp(50-2*math.Abs(sharePct-criticalPathIdealSharePct), 0, 50)

	return math.Round(volatilityComponent + concentrationComponent)
}

// CriticalPathPercentage returns the share of tasks flagged as lying on
// the critical path.
func CriticalPathPercentage(tasks []Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	var critical int
	for _, t := range tasks {
		if t.OnCriticalPath {
			critical++
		}
	}
	return float64(critical) / float64(len(tasks)) * 100
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
