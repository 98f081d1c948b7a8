package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func completedTask(plannedEnd, actualEnd *time.Time) Task {
	return Task{Status: StatusCompleted, PlannedEnd: plannedEnd, ActualEnd: actualEnd}
}

func TestForecastAccuracy(t *testing.T) {
	planned := date(2025, time.March, 10)
	early := date(2025, time.March, 8)
	late := date(2025, time.March, 15)

	t.Run("all on time", func(t *testing.T) {
		tasks := make([]Task, 0, 10)
		for i := 0; i < 10; i++ {
			tasks = append(tasks, completedTask(planned, early))
		}
		assert.Equal(t, 100.0, ForecastAccuracy(tasks))
	})

	t.Run("three of ten late", func(t *testing.T) {
		tasks := make([]Task, 0, 10)
		for i := 0; i < 7; i++ {
			tasks = append(tasks, completedTask(planned, early))
		}
		for i := 0; i < 3; i++ {
			tasks = append(tasks, completedTask(planned, late))
		}
		assert.Equal(t, 70.0, ForecastAccuracy(tasks))
	})

	t.Run("finishing exactly on the planned date counts as on time", func(t *testing.T) {
		tasks := []Task{completedTask(planned, planned)}
		assert.Equal(t, 100.0, ForecastAccuracy(tasks))
	})

	t.Run("tasks missing a date are excluded, not counted as failures", func(t *testing.T) {
		tasks := []Task{
			completedTask(planned, early),
			completedTask(nil, late),
			completedTask(planned, nil),
		}
		assert.Equal(t, 100.0, ForecastAccuracy(tasks))
	})

	t.Run("incomplete tasks are excluded", func(t *testing.T) {
		tasks := []Task{
			{Status: StatusInProgress, PlannedEnd: planned, ActualEnd: late},
			completedTask(planned, early),
		}
		assert.Equal(t, 100.0, ForecastAccuracy(tasks))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, 0.0, ForecastAccuracy(nil))
	})

	t.Run("all incomplete set", func(t *testing.T) {
		tasks := []Task{{Status: StatusNotStarted}, {Status: StatusInProgress}}
		assert.Equal(t, 0.0, ForecastAccuracy(tasks))
	})

	t.Run("result stays within range", func(t *testing.T) {
		tasks := []Task{
			completedTask(planned, late),
			completedTask(planned, late),
		}
		got := ForecastAccuracy(tasks)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	})
}

func TestDurationVariance(t *testing.T) {
	t.Run("mean of overruns", func(t *testing.T) {
		tasks := []Task{
			{Status: StatusCompleted, PlannedDuration: 10, ActualDuration: 12}, // +20%
			{Status: StatusCompleted, PlannedDuration: 10, ActualDuration: 14}, // +40%
		}
		assert.InDelta(t, 30.0, DurationVariance(tasks), 0.001)
	})

	t.Run("underrun is negative", func(t *testing.T) {
		tasks := []Task{
			{Status: StatusCompleted, PlannedDuration: 10, ActualDuration: 8},
		}
		assert.InDelta(t, -20.0, DurationVariance(tasks), 0.001)
	})

	t.Run("zero durations are excluded entirely", func(t *testing.T) {
		tasks := []Task{
			{Status: StatusCompleted, PlannedDuration: 0, ActualDuration: 15},
			{Status: StatusCompleted, PlannedDuration: 10, ActualDuration: 0},
			{Status: StatusCompleted, PlannedDuration: 10, ActualDuration: 12},
		}
		assert.InDelta(t, 20.0, DurationVariance(tasks), 0.001)
	})

	t.Run("incomplete tasks are excluded", func(t *testing.T) {
		tasks := []Task{
			{Status: StatusInProgress, PlannedDuration: 10, ActualDuration: 20},
		}
		assert.Equal(t, 0.0, DurationVariance(tasks))
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, 0.0, DurationVariance(nil))
	})
}

func TestGenericResourcePercentage(t *testing.T) {
	markers := DefaultGenericResourceMarkers

	t.Run("matches are case-insensitive substrings", func(t *testing.T) {
		tasks := []Task{
			{AssignedResource: "Resource_04"},
			{AssignedResource: "GENERIC engineer"},
			{AssignedResource: "To Be Determined"},
			{AssignedResource: "Dana Oliveira"},
		}
		assert.InDelta(t, 75.0, GenericResourcePercentage(tasks, markers), 0.001)
	})

	t.Run("custom markers", func(t *testing.T) {
		tasks := []Task{
			{AssignedResource: "Contractor Pool"},
			{AssignedResource: "Dana Oliveira"},
		}
		assert.InDelta(t, 50.0, GenericResourcePercentage(tasks, []string{"contractor"}), 0.001)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Equal(t, 0.0, GenericResourcePercentage(nil, markers))
	})
}

func TestMeanResourceUtilisation(t *testing.T) {
	t.Run("zero utilisation is not reported, not idle", func(t *testing.T) {
		tasks := []Task{
			{ResourceUtilisation: 80},
			{ResourceUtilisation: 0},
			{ResourceUtilisation: 60},
		}
		assert.InDelta(t, 70.0, MeanResourceUtilisation(tasks), 0.001)
	})

	t.Run("over-allocation above 100 is kept", func(t *testing.T) {
		tasks := []Task{{ResourceUtilisation: 130}}
		assert.InDelta(t, 130.0, MeanResourceUtilisation(tasks), 0.001)
	})

	t.Run("nothing reported", func(t *testing.T) {
		tasks := []Task{{ResourceUtilisation: 0}}
		assert.Equal(t, 0.0, MeanResourceUtilisation(tasks))
	})
}

func TestCriticalPathHealth(t *testing.T) {
	t.Run("no critical tasks scores perfectly healthy", func(t *testing.T) {
		tasks := []Task{
			{CriticalPathVolatility: 99},
			{ResourceUtilisation: 5},
		}
		assert.Equal(t, 100.0, CriticalPathHealth(tasks))
	})

	t.Run("empty set scores healthy", func(t *testing.T) {
		assert.Equal(t, 100.0, CriticalPathHealth(nil))
	})

	t.Run("ideal share with no volatility", func(t *testing.T) {
		// 2 critical of 10 is the ideal 20% share.
		tasks := make([]Task, 10)
		tasks[0].OnCriticalPath = true
		tasks[1].OnCriticalPath = true
		assert.Equal(t, 100.0, CriticalPathHealth(tasks))
	})

	t.Run("volatility and concentration both penalize", func(t *testing.T) {
		// 1 critical of 10: share 10%, avg volatility 5.
		// volatility component (1-5/10)*50 = 25
		// concentration component 50-2*|10-20| = 30
		tasks := make([]Task, 10)
		tasks[0].OnCriticalPath = true
		tasks[0].CriticalPathVolatility = 5
		assert.Equal(t, 55.0, CriticalPathHealth(tasks))
	})

	t.Run("volatility of ten zeroes the volatility component", func(t *testing.T) {
		tasks := make([]Task, 10)
		tasks[0].OnCriticalPath = true
		tasks[1].OnCriticalPath = true
		tasks[0].CriticalPathVolatility = 10
		tasks[1].CriticalPathVolatility = 10
		// share is ideal, so only the concentration component remains.
		assert.Equal(t, 50.0, CriticalPathHealth(tasks))
	})

	t.Run("everything critical zeroes the concentration component", func(t *testing.T) {
		tasks := []Task{
			{OnCriticalPath: true},
			{OnCriticalPath: true},
		}
		// share 100%: concentration clamps to 0, volatility component is full.
		assert.Equal(t, 50.0, CriticalPathHealth(tasks))
	})
}

func TestCriticalPathPercentage(t *testing.T) {
	tasks := make([]Task, 4)
	tasks[0].OnCriticalPath = true
	assert.InDelta(t, 25.0, CriticalPathPercentage(tasks), 0.001)
	assert.Equal(t, 0.0, CriticalPathPercentage(nil))
}
