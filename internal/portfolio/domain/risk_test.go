package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyTopRisks(t *testing.T) {
	th := DefaultThresholds().Risk

	t.Run("healthy project produces no risks", func(t *testing.T) {
		m := ProjectMetrics{
			ForecastAccuracy:    90,
			GenericResourcePct:  10,
			DurationVariance:    5,
			CriticalPathTaskPct: 15,
		}
		assert.Empty(t, IdentifyTopRisks(nil, m, th))
	})

	t.Run("each breach contributes one formatted statement", func(t *testing.T) {
		m := ProjectMetrics{
			ForecastAccuracy:    45.5,
			GenericResourcePct:  10,
			DurationVariance:    5,
			CriticalPathTaskPct: 15,
		}
		risks := IdentifyTopRisks(nil, m, th)
		require.Len(t, risks, 1)
		assert.Contains(t, risks[0], "45.5%")
		assert.Contains(t, risks[0], "forecast accuracy")
	})

	t.Run("fixed priority order, truncated to five", func(t *testing.T) {
		m := ProjectMetrics{
			ForecastAccuracy:    30, // 1st
			GenericResourcePct:  70, // 2nd
			DurationVariance:    40, // 3rd
			CriticalPathTaskPct: 50, // 4th
		}
		tasks := []Task{
			{CriticalPathVolatility: 8},                  // 5th
			{PlannedBudget: 100, TotalSpent: 150},        // 6th, cut by the cap
			{CriticalPathVolatility: 6, PlannedBudget: 1}, // counted by rule 5 only
		}

		risks := IdentifyTopRisks(tasks, m, th)
		require.Len(t, risks, 5)
		assert.Contains(t, risks[0], "forecast accuracy")
		assert.Contains(t, risks[1], "generic resource")
		assert.Contains(t, risks[2], "duration variance")
		assert.Contains(t, risks[3], "critical path")
		assert.Contains(t, risks[4], "2 task(s)")
		assert.Contains(t, risks[4], "volatility")
	})

	t.Run("volatile and overspent task counts", func(t *testing.T) {
		m := ProjectMetrics{ForecastAccuracy: 90}
		tasks := []Task{
			{CriticalPathVolatility: 6},
			{PlannedBudget: 100, TotalSpent: 111},
			{PlannedBudget: 100, TotalSpent: 110}, // exactly 110% is not over
			{PlannedBudget: 0, TotalSpent: 500},   // no budget, never over
		}

		risks := IdentifyTopRisks(tasks, m, th)
		require.Len(t, risks, 2)
		assert.Contains(t, risks[0], "1 task(s)")
		assert.Contains(t, risks[0], "volatility")
		assert.Contains(t, risks[1], "1 task(s)")
		assert.Contains(t, risks[1], "budget")
	})
}
